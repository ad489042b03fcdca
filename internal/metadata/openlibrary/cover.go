package openlibrary

import "fmt"

// coversBaseURL is the Open Library cover image host.
const coversBaseURL = "https://covers.openlibrary.org/b/id"

// coverSize selects the medium rendition, which is what the list views show.
const coverSize = "M"

// CoverURL builds the deterministic cover image URL for a cover identifier.
func CoverURL(coverID int64) string {
	return fmt.Sprintf("%s/%d-%s.jpg", coversBaseURL, coverID, coverSize)
}
