package logger

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// EntryMessage returns the message of an error entry.
func EntryMessage(e errorEntry) string { return e.message }

// EntryMetadata returns the metadata of an error entry.
func EntryMetadata(e errorEntry) map[string]any { return e.metadata }
