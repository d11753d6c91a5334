package sync

import (
	"html"
	"strings"
)

// mojibakeReplacer repairs the known set of UTF-8 byte sequences that were
// mis-decoded as Latin-1 somewhere upstream of the wiki. The table is fixed;
// anything it does not recognise passes through unchanged.
var mojibakeReplacer = strings.NewReplacer(
	"â€™", "’",
	"â€˜", "‘",
	"â€œ", "“",
	"â€", "”",
	"â€“", "–",
	"â€”", "—",
	"â€¦", "…",
	"Ã¡", "á",
	"Ã©", "é",
	"Ã­", "í",
	"Ã³", "ó",
	"Ãº", "ú",
	"Ã±", "ñ",
	"Ã¤", "ä",
	"Ã¶", "ö",
	"Ã¼", "ü",
	"Ã ", "à",
	"Ã¨", "è",
	"Ã¬", "ì",
	"Ã²", "ò",
	"Ã¹", "ù",
	"Ã§", "ç",
	"Ã¢", "â",
	"Ãª", "ê",
	"Ã®", "î",
	"Ã´", "ô",
	"Ã»", "û",
	"ÃŸ", "ß",
	"Ã‰", "É",
	"Ã‘", "Ñ",
	"Â ", " ",
)

// NormalizeText decodes HTML entities and repairs known encoding artifacts in
// free text. It always returns a string, possibly unchanged.
func NormalizeText(text string) string {
	return mojibakeReplacer.Replace(html.UnescapeString(text))
}
