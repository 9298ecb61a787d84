package models

// LandingPageData is passed to the index.html template
type LandingPageData struct {
	ProductName   string
	Studio        string
	Year          int
	DownloadReady bool
}
