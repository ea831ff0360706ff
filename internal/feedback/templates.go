package feedback

import (
	"fmt"

	"github.com/lessonpath/pathcheck/pkg/models"
)

// builtinTemplates returns the id-keyed templates shipped with the tool.
func builtinTemplates() map[string]models.FeedbackTemplate {
	return map[string]models.FeedbackTemplate{
		"CALC-001": {
			Message: "The Cargo.toml file is missing. This file is required for all Rust projects.",
			Suggestions: []string{
				"Create a Cargo.toml file in your project root",
				"Use 'cargo new calculator' to create a new project with proper structure",
				"Make sure the file is named exactly 'Cargo.toml' (case-sensitive)",
			},
			Resources: []string{
				"https://doc.rust-lang.org/cargo/reference/manifest.html",
			},
			CodeExamples: []string{
				"[package]\nname = \"calculator\"\nversion = \"0.1.0\"\nedition = \"2021\"",
			},
		},
		"CALC-004": {
			Message: "The parse_input function is missing. This function should parse user input into operands and operator.",
			Suggestions: []string{
				"Create a function named 'parse_input' that takes a string and returns a Result",
				"The function should split the input and extract two numbers and an operator",
				"Handle parsing errors by returning appropriate error types",
			},
			Resources: []string{
				"https://doc.rust-lang.org/book/ch03-03-how-functions-work.html",
				"https://doc.rust-lang.org/std/primitive.str.html#method.split",
			},
			CodeExamples: []string{
				"fn parse_input(input: &str) -> Result<Calculation, CalculatorError> {\n    // Implementation here\n}",
			},
		},
		"FEXP-004": {
			Message: "The list_directory function is missing. This function should list the contents of a directory.",
			Suggestions: []string{
				"Create a function named 'list_directory' that takes a path parameter",
				"Use std::fs::read_dir to read directory contents",
				"Handle potential I/O errors with Result types",
			},
			Resources: []string{
				"https://doc.rust-lang.org/std/fs/fn.read_dir.html",
			},
			CodeExamples: []string{
				"fn list_directory(path: &Path) -> Result<Vec<String>, std::io::Error> {\n    // Implementation here\n}",
			},
		},
	}
}

// builtinFallbacks returns the per-kind generic templates used when no
// id-specific template matches a failed requirement.
func builtinFallbacks() map[models.CheckKind]models.FeedbackTemplate {
	return map[models.CheckKind]models.FeedbackTemplate{
		models.CheckFileExists: {
			Message: "A required file is missing from your project.",
			Suggestions: []string{
				"Check the project structure requirements",
				"Make sure you've created all necessary files",
				"Verify file names match exactly (case-sensitive)",
			},
			Resources: []string{
				"https://doc.rust-lang.org/cargo/guide/project-layout.html",
			},
		},
		models.CheckSymbolExists: {
			Message: "A required function or type is missing from your implementation.",
			Suggestions: []string{
				"Check the project requirements for required names",
				"Make sure names match exactly",
				"Verify items are public if they need to be accessed from tests",
			},
			Resources: []string{
				"https://doc.rust-lang.org/book/ch03-03-how-functions-work.html",
			},
		},
		models.CheckBuildSucceeds: {
			Message: "Your code has compilation errors that need to be fixed.",
			Suggestions: []string{
				"Run the build command locally to see detailed error messages",
				"Fix syntax errors and type mismatches",
				"Make sure all dependencies are properly declared",
			},
			Resources: []string{
				"https://doc.rust-lang.org/error-index.html",
			},
		},
		models.CheckTestsPass: {
			Message: "Some tests are failing, indicating your implementation may not be complete.",
			Suggestions: []string{
				"Run the test command locally to see which specific tests are failing",
				"Review the test cases to understand expected behavior",
				"Debug your implementation step by step",
			},
			Resources: []string{
				"https://doc.rust-lang.org/book/ch11-00-testing.html",
			},
		},
		models.CheckDocumentationExists: {
			Message: "Documentation files are missing from your project.",
			Suggestions: []string{
				"Add a README.md describing what the project does",
				"Add a CONCEPTS.md summarizing what you learned",
			},
		},
		models.CheckErrorHandling: {
			Message: "No error handling patterns were found in your code.",
			Suggestions: []string{
				"Use Result types to propagate recoverable errors",
				"Handle failure cases instead of unwrapping blindly",
			},
			Resources: []string{
				"https://doc.rust-lang.org/book/ch09-02-recoverable-errors-with-result.html",
			},
		},
		models.CheckCustom: {
			Message: "A project-specific requirement was not met.",
			Suggestions: []string{
				"Review the project requirements carefully",
				"Check the project README for detailed instructions",
				"Make sure your implementation follows the specified interface",
			},
			Resources: []string{
				"https://doc.rust-lang.org/book/",
			},
		},
	}
}

// StatusItem builds the overall project status banner, banded by success
// rate: everything passing, mostly passing, or needing substantial work.
func StatusItem(exerciseID string, successRate float64) models.FeedbackItem {
	switch {
	case successRate == 100.0:
		return models.FeedbackItem{
			RequirementID: exerciseID,
			Severity:      models.SeveritySuccess,
			Message:       fmt.Sprintf("Congratulations! Your %s project meets all requirements.", exerciseID),
			Suggestions: []string{
				"Consider exploring the extension challenges",
				"Review the concepts you've learned",
				"Move on to the next project when ready",
			},
		}
	case successRate >= 75.0:
		return models.FeedbackItem{
			RequirementID: exerciseID,
			Severity:      models.SeverityWarning,
			Message:       fmt.Sprintf("Your %s project is %.1f%% complete. Just a few more requirements to address.", exerciseID, successRate),
			Suggestions: []string{
				"Focus on the failing requirements below",
				"Review the project instructions carefully",
			},
		}
	default:
		return models.FeedbackItem{
			RequirementID: exerciseID,
			Severity:      models.SeverityError,
			Message:       fmt.Sprintf("Your %s project is %.1f%% complete. Several requirements need attention.", exerciseID, successRate),
			Suggestions: []string{
				"Start with the basic project structure",
				"Follow the step-by-step instructions",
				"Don't hesitate to ask for help if needed",
			},
			Resources: []string{
				"https://doc.rust-lang.org/book/",
				"https://doc.rust-lang.org/rust-by-example/",
			},
		}
	}
}

// projectTips maps exercise ids to getting-started guidance shown when a
// project is in its early stages.
var projectTips = map[string]models.FeedbackItem{
	"calculator": {
		Severity: models.SeverityInfo,
		Message:  "The calculator project focuses on basic concepts like functions, error handling, and pattern matching.",
		Suggestions: []string{
			"Start by implementing the basic project structure",
			"Create functions for parsing input and performing calculations",
			"Use Result types for error handling",
			"Implement match expressions for different operations",
		},
		Resources: []string{
			"https://doc.rust-lang.org/book/ch06-02-match.html",
			"https://doc.rust-lang.org/book/ch09-02-recoverable-errors-with-result.html",
		},
	},
	"file-explorer": {
		Severity: models.SeverityInfo,
		Message:  "The file explorer project teaches you about working with the file system and error handling.",
		Suggestions: []string{
			"Use std::fs module for file system operations",
			"Handle potential I/O errors with Result types",
			"Consider using Path and PathBuf for path manipulation",
		},
		Resources: []string{
			"https://doc.rust-lang.org/std/fs/index.html",
			"https://doc.rust-lang.org/std/path/index.html",
		},
	},
	"library-management": {
		Severity: models.SeverityInfo,
		Message:  "This project focuses on structs, methods, and data management.",
		Suggestions: []string{
			"Define structs for Book and Library",
			"Implement methods for adding, removing, and searching books",
			"Use Vec<T> to store collections of books",
			"Consider using HashMap for efficient lookups",
		},
		Resources: []string{
			"https://doc.rust-lang.org/book/ch05-00-structs.html",
			"https://doc.rust-lang.org/book/ch08-03-hash-maps.html",
		},
	},
	"thread-pool": {
		Severity: models.SeverityInfo,
		Message:  "This advanced project involves concurrency and thread management.",
		Suggestions: []string{
			"Use std::thread for creating threads",
			"Implement channels for communication between threads",
			"Consider using Arc and Mutex for shared state",
			"Handle thread panics gracefully",
		},
		Resources: []string{
			"https://doc.rust-lang.org/book/ch16-00-concurrency.html",
			"https://doc.rust-lang.org/std/sync/index.html",
		},
	},
	"async-network-server": {
		Severity: models.SeverityInfo,
		Message:  "This expert-level project involves async programming and network I/O.",
		Suggestions: []string{
			"Add tokio dependency to Cargo.toml",
			"Use #[tokio::main] for async main function",
			"Implement async functions with async/await",
			"Use TcpListener for network connections",
		},
		Resources: []string{
			"https://tokio.rs/tokio/tutorial",
			"https://doc.rust-lang.org/book/ch20-00-final-project-a-web-server.html",
		},
	},
}

// ProjectTip returns getting-started guidance for the exercise when its
// success rate is below half, signaling an early-stage project.
func ProjectTip(exerciseID string, successRate float64) (models.FeedbackItem, bool) {
	if successRate >= 50.0 {
		return models.FeedbackItem{}, false
	}
	tip, ok := projectTips[exerciseID]
	if !ok {
		return models.FeedbackItem{}, false
	}
	tip.RequirementID = exerciseID
	return tip, true
}
