package timesheet

// Field formats are enforced at the binding edge; presence and ordering are
// cross-field rules and belong to Form.Validate, which accumulates them.
type DeclareRequest struct {
	StartDate string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndDate   string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	EndTime   string `json:"end_time" binding:"omitempty,datetime=15:04"`
	Note      string `json:"note" binding:"omitempty,max=2000"`
}

// FormResponse is the prefilled editing state for one declarable shift.
type FormResponse struct {
	ShiftID    int    `json:"shift_id"`
	StartDate  string `json:"start_date"`
	StartTime  string `json:"start_time"`
	EndDate    string `json:"end_date"`
	EndTime    string `json:"end_time"`
	Note       string `json:"note"`
	MaxNoteLen int    `json:"max_note_len"`
}
