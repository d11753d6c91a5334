package sync

// MonthsRequest selects a timeline year
type MonthsRequest struct {
	Year string `query:"year" validate:"required,timeline_year"`
}

// FilesRequest selects a timeline month
type FilesRequest struct {
	Year  string `query:"year" validate:"required,timeline_year"`
	Month string `query:"month" validate:"required,timeline_month"`
}

// CompareFileRequest selects one timeline file to compare
type CompareFileRequest struct {
	Year  string `query:"year" validate:"required,timeline_year"`
	Month string `query:"month" validate:"required,timeline_month"`
	File  string `query:"file" validate:"required,endswith=.md"`
}

// CompareMonthRequest selects a whole month to compare
type CompareMonthRequest struct {
	Year  string `query:"year" validate:"required,timeline_year"`
	Month string `query:"month" validate:"required,timeline_month"`
}

// ReconcileRequest selects one timeline file to parse and commit back
type ReconcileRequest struct {
	Year  string `json:"year" validate:"required,timeline_year"`
	Month string `json:"month" validate:"required,timeline_month"`
	File  string `json:"file" validate:"required,endswith=.md"`
}

// ExportRequest runs a comparison and stores the results as an artifact.
// When File is empty the whole month is compared.
type ExportRequest struct {
	Name  string `json:"name" validate:"required"`
	Year  string `json:"year" validate:"required,timeline_year"`
	Month string `json:"month" validate:"required,timeline_month"`
	File  string `json:"file" validate:"omitempty,endswith=.md"`
}
