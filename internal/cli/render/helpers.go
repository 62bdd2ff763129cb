package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	labelColor   = color.New(color.FgCyan, color.Bold)
	faintColor   = color.New(color.Faint)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warningColor.Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	if len(message) > 0 {
		message = strings.ToUpper(message[:1]) + message[1:]
	}
	return errorColor.Sprintf("❌ %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return successColor.Sprintf("✅ %s", message)
}

// getRelativePath returns the path relative to the current directory when possible
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// orMissing returns value, or a faint placeholder when it is empty
func orMissing(value, placeholder string) string {
	if value == "" {
		return faintColor.Sprint(placeholder)
	}
	return value
}
