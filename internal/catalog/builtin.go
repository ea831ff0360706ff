package catalog

import (
	"github.com/lessonpath/pathcheck/pkg/models"
)

// Builtin returns the built-in learning path catalog. It covers every
// exercise shipped with the lesson content; a catalog file supplied via
// config replaces it entirely. BasePath is left for the caller to set
// from config or the working directory.
func Builtin() *Catalog {
	c := &Catalog{
		Levels: []Level{
			{
				Name: "basic",
				Exercises: []Exercise{
					{
						ID:   "calculator",
						Path: "basic/module1/calculator",
						Requirements: []models.Requirement{
							{ID: "CALC-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "CALC-002", Description: "Source code exists", Check: models.FileExists("src/main.rs"), Required: true},
							{ID: "CALC-003", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
							{ID: "CALC-004", Description: "Parse input function exists", Check: models.SymbolExists("fn parse_input"), Required: true},
							{ID: "CALC-005", Description: "Perform calculation function exists", Check: models.SymbolExists("fn perform_calculation"), Required: true},
							{ID: "CALC-006", Description: "Tests exist and pass", Check: models.TestsPass(), Required: true},
							{ID: "CALC-007", Description: "Error handling implemented", Check: models.ErrorHandlingPresent(), Required: true},
							{ID: "CALC-008", Description: "Documentation exists", Check: models.DocumentationExists(), Required: true},
						},
					},
					{
						ID:   "file-explorer",
						Path: "basic/module1/file-explorer",
						Requirements: []models.Requirement{
							{ID: "FEXP-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "FEXP-002", Description: "Source code exists", Check: models.FileExists("src/main.rs"), Required: true},
							{ID: "FEXP-003", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
							{ID: "FEXP-004", Description: "List directory function exists", Check: models.SymbolExists("fn list_directory"), Required: true},
							{ID: "FEXP-005", Description: "Error handling implemented", Check: models.ErrorHandlingPresent(), Required: true},
							{ID: "FEXP-006", Description: "Documentation exists", Check: models.DocumentationExists(), Required: false},
						},
					},
					{
						ID:   "text-processor",
						Path: "basic/module2/text-processor",
						Requirements: []models.Requirement{
							{ID: "TEXT-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "TEXT-002", Description: "Source code exists", Check: models.FileExists("src/main.rs"), Required: true},
							{ID: "TEXT-003", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
							{ID: "TEXT-004", Description: "Tests exist and pass", Check: models.TestsPass(), Required: false},
						},
					},
					{
						ID:   "todo-list",
						Path: "basic/module4/todo-list",
						Requirements: []models.Requirement{
							{ID: "TODO-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "TODO-002", Description: "Source code exists", Check: models.FileExists("src/main.rs"), Required: true},
							{ID: "TODO-003", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
							{ID: "TODO-004", Description: "Error handling implemented", Check: models.ErrorHandlingPresent(), Required: false},
						},
					},
				},
			},
			{
				Name: "intermediate",
				Exercises: []Exercise{
					{
						ID:   "library-management",
						Path: "intermediate/library-management",
						Requirements: []models.Requirement{
							{ID: "LIB-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "LIB-002", Description: "Library structure exists", Check: models.FileExists("src/lib.rs"), Required: true},
							{ID: "LIB-003", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
							{ID: "LIB-004", Description: "Book struct exists", Check: models.Custom("book_struct"), Required: true},
							{ID: "LIB-005", Description: "Library struct exists", Check: models.Custom("library_struct"), Required: true},
							{ID: "LIB-006", Description: "Tests exist and pass", Check: models.TestsPass(), Required: true},
						},
					},
					{
						ID:   "web-scraper",
						Path: "intermediate/multi-threaded-web-scraper",
						Requirements: []models.Requirement{
							{ID: "SCRP-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "SCRP-002", Description: "Worker module exists", Check: models.FileExists("src/worker.rs"), Required: true},
							{ID: "SCRP-003", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
							{ID: "SCRP-004", Description: "Integration tests directory exists", Check: models.DirExists("tests"), Required: false},
							{ID: "SCRP-005", Description: "Documentation exists", Check: models.DocumentationExists(), Required: false},
						},
					},
					{
						ID:   "custom-data-structure",
						Path: "intermediate/custom-data-structure",
						Requirements: []models.Requirement{
							{ID: "CDS-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "CDS-002", Description: "Source code exists", Check: models.FileExists("src/main.rs"), Required: true},
							{ID: "CDS-003", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
						},
					},
					{
						ID:   "cli-database-tool",
						Path: "intermediate/cli-database-tool",
						Requirements: []models.Requirement{
							{ID: "CLIDB-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "CLIDB-002", Description: "Library structure exists", Check: models.FileExists("src/lib.rs"), Required: true},
							{ID: "CLIDB-003", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
							{ID: "CLIDB-004", Description: "Tests exist and pass", Check: models.TestsPass(), Required: true},
							{ID: "CLIDB-005", Description: "Error handling implemented", Check: models.ErrorHandlingPresent(), Required: true},
						},
					},
				},
			},
			{
				Name: "advanced",
				Exercises: []Exercise{
					{
						ID:   "thread-pool",
						Path: "advanced/thread-pool",
						Requirements: []models.Requirement{
							{ID: "TPOOL-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "TPOOL-002", Description: "ThreadPool struct exists", Check: models.Custom("thread_pool_struct"), Required: true},
							{ID: "TPOOL-003", Description: "Execute method exists", Check: models.SymbolExists("fn execute"), Required: true},
							{ID: "TPOOL-004", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
							{ID: "TPOOL-005", Description: "Documentation exists", Check: models.DocumentationExists(), Required: false},
						},
					},
					{
						ID:   "memory-allocator",
						Path: "advanced/custom-memory-allocator",
						Requirements: []models.Requirement{
							{ID: "ALLOC-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "ALLOC-002", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
						},
					},
					{
						ID:   "c-library-binding",
						Path: "advanced/c-library-binding",
						Requirements: []models.Requirement{
							{ID: "CBIND-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "CBIND-002", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
						},
					},
					{
						ID:   "dsl-project",
						Path: "advanced/dsl-project",
						Requirements: []models.Requirement{
							{ID: "DSL-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "DSL-002", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
							{ID: "DSL-003", Description: "Tests exist and pass", Check: models.TestsPass(), Required: false},
						},
					},
				},
			},
			{
				Name: "expert",
				Exercises: []Exercise{
					{
						ID:   "async-network-server",
						Path: "expert/async-network-server",
						Requirements: []models.Requirement{
							{ID: "ASYNC-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "ASYNC-002", Description: "Async main function exists", Check: models.Custom("async_main"), Required: true},
							{ID: "ASYNC-003", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
						},
					},
					{
						ID:   "custom-runtime",
						Path: "expert/custom-runtime",
						Requirements: []models.Requirement{
							{ID: "CRT-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "CRT-002", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
						},
					},
					{
						ID:   "compiler-plugin",
						Path: "expert/compiler-plugin",
						Requirements: []models.Requirement{
							{ID: "CPLUG-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "CPLUG-002", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
						},
					},
					{
						ID:   "data-processing-pipeline",
						Path: "expert/high-performance-data-processing",
						Requirements: []models.Requirement{
							{ID: "PIPE-001", Description: "Project structure exists", Check: models.FileExists("Cargo.toml"), Required: true},
							{ID: "PIPE-002", Description: "Project compiles successfully", Check: models.BuildSucceeds(), Required: true},
							{ID: "PIPE-003", Description: "Tests exist and pass", Check: models.TestsPass(), Required: true},
						},
					},
				},
			},
		},
	}

	// Builtin data is authored by hand; a bad entry is a programming error.
	if err := c.index(); err != nil {
		panic("builtin catalog invalid: " + err.Error())
	}
	return c
}
