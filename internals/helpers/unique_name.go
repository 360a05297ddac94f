// helper/unique_name.go
package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var reDash = regexp.MustCompile(`[-_]+`)

// NormalizeUsername keeps ASCII letters, digits and underscores, lower-cased.
// Accents are stripped first (é -> e).
func NormalizeUsername(s string, maxLen int) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(reDash.ReplaceAllString(b.String(), "_"), "_")
	if maxLen > 0 && len(out) > maxLen {
		out = strings.Trim(out[:maxLen], "_")
	}
	return out
}

// EnsureUniqueValue returns base, or base_N with the next free N, for
// a unique text column.
func EnsureUniqueValue(db *gorm.DB, base, table, column string) (string, error) {
	var count int64
	if err := db.Table(table).
		Where(fmt.Sprintf("%s = ?", column), base).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}

	var taken []string
	if err := db.Table(table).
		Where(fmt.Sprintf("%s LIKE ?", column), base+"_%").
		Pluck(column, &taken).Error; err != nil {
		return "", err
	}

	maxN := 1
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `_(\d+)$`)
	for _, v := range taken {
		if m := re.FindStringSubmatch(v); len(m) == 2 {
			var n int
			fmt.Sscanf(m[1], "%d", &n)
			if n > maxN {
				maxN = n
			}
		}
	}
	return fmt.Sprintf("%s_%d", base, maxN+1), nil
}
