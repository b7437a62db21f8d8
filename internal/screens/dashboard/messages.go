package dashboard

// startImportMsg defers the bulk import by one event-loop cycle so the
// "Importing data..." frame paints before the blocking replay runs.
type startImportMsg struct {
	Path string
}

// confirmedMsg is sent after the model commits pending parameters.
type confirmedMsg struct {
	Log string // empty when nothing changed
}
