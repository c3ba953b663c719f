package interfaces

// ITableRenderer turns a titled, fixed-header table into a downloadable file.
type ITableRenderer interface {
	Render(title string, headers []string, rows [][]string) ([]byte, error)
	ContentType() string
	Extension() string
}
