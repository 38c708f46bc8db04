package domain

// Photo is a single search result as returned by the photo search API
type Photo struct {
	ID              int64       `json:"id"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	URL             string      `json:"url"`
	Photographer    string      `json:"photographer"`
	PhotographerURL string      `json:"photographer_url"`
	AvgColor        string      `json:"avg_color"`
	Alt             string      `json:"alt"`
	Src             PhotoSource `json:"src"`
}

// PhotoSource holds the URLs of the rendered variants of a photo
type PhotoSource struct {
	Original  string `json:"original"`
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Small     string `json:"small"`
	Portrait  string `json:"portrait"`
	Landscape string `json:"landscape"`
	Tiny      string `json:"tiny"`
}

// SearchResponse is the body of a search call. Photos is a pointer so that a
// body without the field can be told apart from an empty result set.
type SearchResponse struct {
	Photos       *[]Photo `json:"photos"`
	TotalResults int      `json:"total_results"`
	Page         int      `json:"page"`
	PerPage      int      `json:"per_page"`
}

// SearchRequest identifies one submitted search
type SearchRequest struct {
	Generation uint64 // monotonically increasing per submit
	RequestID  string // for log correlation only
	Topic      string
}

// DisplayURL picks the variant shown in the gallery, preferring portrait
func (p Photo) DisplayURL() string {
	for _, u := range []string{p.Src.Portrait, p.Src.Large, p.Src.Medium, p.Src.Original} {
		if u != "" {
			return u
		}
	}
	return ""
}
