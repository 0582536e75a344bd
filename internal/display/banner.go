package display

import (
	"fmt"
	"os"
	"strings"
)

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	italic = "\033[3m"

	red     = "\033[31m"
	green   = "\033[32m"
	yellow  = "\033[33m"
	blue    = "\033[34m"
	magenta = "\033[35m"
	cyan    = "\033[36m"
	white   = "\033[37m"

	brightRed     = "\033[91m"
	brightGreen   = "\033[92m"
	brightYellow  = "\033[93m"
	brightBlue    = "\033[94m"
	brightMagenta = "\033[95m"
	brightCyan    = "\033[96m"
	brightWhite   = "\033[97m"
)

// ServerInfo holds all the information to display in the startup banner.
type ServerInfo struct {
	// Site data stats
	SubjectCount  int
	QuestionCount int
	SiteDir       string
	DataDir       string

	// Server
	Port int
}

// PrintBanner prints a colorful startup banner for the practice-site server.
func PrintBanner(info ServerInfo) {
	w := os.Stdout

	addr := fmt.Sprintf(":%d", info.Port)
	host := fmt.Sprintf("http://localhost%s", addr)

	// Header
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s%s⚡ JCL Buddy Practice Server%s\n", bold, brightCyan, reset)
	fmt.Fprintf(w, "  %s%s━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━%s\n", dim, cyan, reset)
	fmt.Fprintln(w)

	// Question bank section
	printSectionHeader(w, "📚 Question Bank")
	printKVColored(w, "Subjects", fmt.Sprintf("%d", info.SubjectCount), brightGreen)
	printKVColored(w, "Questions", formatCount(info.QuestionCount), brightGreen)
	printKV(w, "Site Root", info.SiteDir, dim+white)
	printKV(w, "Data Dir", info.DataDir, dim+white)
	fmt.Fprintln(w)

	// Endpoints section
	printSectionHeader(w, "🌐 Endpoints")
	printEndpoint(w, "Site  ", "GET ", host+"/", brightBlue)
	printEndpoint(w, "Data  ", "GET ", host+"/data/{subject}.json", brightCyan)
	printEndpoint(w, "API   ", "GET ", host+"/api/subjects", brightMagenta)
	printEndpoint(w, "Health", "GET ", host+"/health", green)
	fmt.Fprintln(w)

	// Footer
	fmt.Fprintf(w, "  %s%s━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━%s\n", dim, cyan, reset)
	fmt.Fprintf(w, "  %s%s🚀 Server listening on %s%s%s%s\n", dim, white, reset, bold+brightGreen, host, reset)
	fmt.Fprintf(w, "  %s%s━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━%s\n", dim, cyan, reset)
	fmt.Fprintln(w)
}

// PipelineSummary is the tally printed after a parse or consolidate run.
type PipelineSummary struct {
	FilesProcessed int
	FilesFailed    int
	Questions      int
	Dropped        int
	MissingKeys    int
}

// PrintSummary prints the end-of-run tally for a pipeline stage.
func PrintSummary(title string, s PipelineSummary) {
	w := os.Stdout

	fmt.Fprintln(w)
	printSectionHeader(w, title)
	printKVColored(w, "Files", fmt.Sprintf("%d", s.FilesProcessed), brightGreen)
	if s.FilesFailed > 0 {
		printKVColored(w, "Failed", fmt.Sprintf("%d", s.FilesFailed), brightRed)
	}
	printKVColored(w, "Questions", formatCount(s.Questions), brightGreen)
	if s.Dropped > 0 {
		printKVColored(w, "Dropped", fmt.Sprintf("%d", s.Dropped), brightYellow)
	}
	if s.MissingKeys > 0 {
		printKVColored(w, "Missing Keys", fmt.Sprintf("%d", s.MissingKeys), brightYellow)
	}
	fmt.Fprintln(w)
}

func printSectionHeader(w *os.File, title string) {
	fmt.Fprintf(w, "  %s%s%s%s\n", bold, brightYellow, title, reset)
}

func printKV(w *os.File, key, value, valueColor string) {
	paddedKey := padRight(key, 18)
	fmt.Fprintf(w, "    %s%s%s  %s%s%s\n", dim, paddedKey, reset, valueColor, value, reset)
}

func printKVColored(w *os.File, key, value, valueColor string) {
	paddedKey := padRight(key, 18)
	fmt.Fprintf(w, "    %s%s%s  %s%s%s%s\n", dim, paddedKey, reset, bold, valueColor, value, reset)
}

func printEndpoint(w *os.File, label, method, url, color string) {
	paddedLabel := padRight(label, 8)
	fmt.Fprintf(w, "    %s%s%s %s%s%-5s%s %s%s%s\n",
		dim, paddedLabel, reset,
		bold, brightWhite, method, reset,
		color, url, reset,
	)
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func formatCount(n int) string {
	if n >= 1_000_000 {
		return fmt.Sprintf("%d (%0.1fM)", n, float64(n)/1_000_000)
	}
	if n >= 1_000 {
		return fmt.Sprintf("%d (%0.1fK)", n, float64(n)/1_000)
	}
	return fmt.Sprintf("%d", n)
}
