// Package devtools implements the small developer utilities offered next to
// the chat: hashing benchmark, case conversion, duplicate finder, password
// generator, JSON formatter, diff highlighter and a connectivity probe.
package devtools

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	benchmarkText       = "Savant Seeker Benchmark"
	benchmarkIterations = 5000

	DefaultPasswordLength = 16
	minPasswordLength     = 4

	// DefaultConnectivityURL answers with an empty 204.
	DefaultConnectivityURL = "https://www.google.com/generate_204"
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	symbolChars  = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	allPassChars = lowerChars + upperChars + digitChars + symbolChars
)

var snakeSegment = regexp.MustCompile(`_\w`)

// RunCPUBenchmark hashes a fixed text repeatedly and reports the elapsed time.
func RunCPUBenchmark() string {
	text := strings.Repeat(benchmarkText, 100)
	start := time.Now()
	for i := range benchmarkIterations {
		sha256.Sum256([]byte(text + strconv.Itoa(i)))
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000
	return fmt.Sprintf("Completed %d SHA-256 hashes in %.2f ms.", benchmarkIterations, elapsed)
}

// CamelToSnake turns "myVariableName" into "my_variable_name".
func CamelToSnake(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.TrimPrefix(b.String(), "_")
}

// SnakeToCamel turns "my_variable_name" into "myVariableName".
func SnakeToCamel(text string) string {
	return snakeSegment.ReplaceAllStringFunc(strings.ToLower(text), func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// Duplicates is the result of FindDuplicateLines.
type Duplicates struct {
	Lines []string `json:"duplicates"`
	Count int      `json:"count"`
}

// FindDuplicateLines lists every non-blank line that occurs more than once,
// in order of first repetition.
func FindDuplicateLines(content string) Duplicates {
	seen := make(map[string]bool)
	reported := make(map[string]bool)
	out := Duplicates{Lines: []string{}}
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !seen[line] {
			seen[line] = true
			continue
		}
		if !reported[line] {
			reported[line] = true
			out.Lines = append(out.Lines, line)
		}
	}
	out.Count = len(out.Lines)
	return out
}

// GenerateStrongPassword returns a random password containing at least one
// lowercase letter, uppercase letter, digit and symbol. Lengths below four
// are raised to four; zero means DefaultPasswordLength.
func GenerateStrongPassword(length int) (string, error) {
	if length == 0 {
		length = DefaultPasswordLength
	}
	length = max(length, minPasswordLength)

	password := make([]byte, 0, length)
	for _, set := range []string{lowerChars, upperChars, digitChars, symbolChars} {
		c, err := pick(set)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}
	for len(password) < length {
		c, err := pick(allPassChars)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher-Yates
	for i := len(password) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}
	return string(password), nil
}

func pick(set string) (byte, error) {
	i, err := randIndex(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("could not read random source: %w", err)
	}
	return int(v.Int64()), nil
}

// PrettyJSON re-indents a JSON document with four spaces.
func PrettyJSON(data string) (string, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(data), "", "    "); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return out.String(), nil
}

// FileSize formats a byte count with binary units.
func FileSize(size uint64) string {
	return humanize.IBytes(size)
}

// Diff is the result of HighlightDiff.
type Diff struct {
	HTML    string `json:"html"`
	HasDiff bool   `json:"has_diff"`
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// HighlightDiff renders a character diff of two texts as HTML spans.
func HighlightDiff(before, after string) Diff {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var out Diff
	var b strings.Builder
	for _, d := range diffs {
		text := htmlEscaper.Replace(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			out.HasDiff = true
			b.WriteString(`<span class="diff-insert">` + text + `</span>`)
		case diffmatchpatch.DiffDelete:
			out.HasDiff = true
			b.WriteString(`<span class="diff-delete">` + text + `</span>`)
		case diffmatchpatch.DiffEqual:
			b.WriteString(`<span>` + text + `</span>`)
		}
	}
	out.HTML = b.String()
	return out
}

// Connectivity is the result of CheckInternetConnection.
type Connectivity struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CheckInternetConnection sends a HEAD request to url. Any HTTP response
// counts as online.
func CheckInternetConnection(ctx context.Context, client *http.Client, url string) Connectivity {
	offline := Connectivity{Message: "Internet connection appears to be offline."}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return offline
	}
	resp, err := client.Do(req)
	if err != nil {
		return offline
	}
	_ = resp.Body.Close()
	return Connectivity{Success: true, Message: "Internet connection appears to be online."}
}
