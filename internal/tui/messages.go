package tui

import (
	"github.com/costcorrect/costcorrect/internal/boq"
	"github.com/costcorrect/costcorrect/internal/client"
	"github.com/costcorrect/costcorrect/internal/intake"
)

// Messages passed between TUI components.

// FileSelectedMsg is sent when a plan file has been staged for analysis.
type FileSelectedMsg struct {
	File *intake.File
}

// FileRejectedMsg is sent when a chosen path could not be staged.
type FileRejectedMsg struct {
	Err error
}

// AnalysisCompleteMsg is sent when the analysis service returned a bill.
// RequestID ties the message to the submission that produced it; stale
// completions are dropped by the controller.
type AnalysisCompleteMsg struct {
	RequestID string
	Result    *boq.Result
}

// AnalysisFailedMsg is sent when an analysis request failed.
type AnalysisFailedMsg struct {
	RequestID string
	Err       *client.Error
}

// TierResolvedMsg carries the account tier fetched at startup.
type TierResolvedMsg struct {
	Tier string
}

// ExportDoneMsg is sent when a document was written to disk.
type ExportDoneMsg struct {
	Path string
}

// ExportFailedMsg is sent when the export pipeline refused or failed.
type ExportFailedMsg struct {
	Err error
}
