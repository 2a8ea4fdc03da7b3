package models

// ColumnConfig is display configuration for one status column on the
// team board. There is exactly one entry per status value; columns do
// not contain tasks.
type ColumnConfig struct {
	ID    Status `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}
