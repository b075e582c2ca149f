package catalog

// NewsItem is a static news announcement
type NewsItem struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	Summary  string `json:"summary" yaml:"summary"`
	Date     string `json:"date" yaml:"date"`
	Author   string `json:"author" yaml:"author"`
	Image    string `json:"image" yaml:"image"`
	Featured bool   `json:"featured" yaml:"featured"`
}

// SearchText returns the fields matched by news/events search
func (n NewsItem) SearchText() (string, string) { return n.Title, n.Summary }

// Event is a static campus event listing
type Event struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
	Time        string `json:"time" yaml:"time"`
	Location    string `json:"location" yaml:"location"`
	Image       string `json:"image" yaml:"image"`
	Featured    bool   `json:"featured" yaml:"featured"`
}

// SearchText returns the fields matched by news/events search
func (e Event) SearchText() (string, string) { return e.Title, e.Description }
