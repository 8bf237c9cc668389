package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"

	"insights-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

const (
	stackDepth     = 32
	reportChunkLen = 4000
)

// reportInternalError ships a formatted bug report to the reporter without
// blocking the request. The report is assembled synchronously because it
// snapshots the request body.
func reportInternalError(c *gin.Context, d discord.IDiscord, err error) {
	report := buildBugReport(c, err.Error(), captureStackTrace())

	go func() {
		for _, chunk := range chunkReport(report) {
			if sendErr := d.ReportBug(context.Background(), chunk); sendErr != nil {
				log.Printf("pkg.response.reportInternalError: %v\n", sendErr)
			}
		}
	}()
}

func buildBugReport(c *gin.Context, errMsg string, stack []string) string {
	var sb strings.Builder

	sb.WriteString("========== insights-srv internal error ==========\n")
	fmt.Fprintf(&sb, "Route  : %s %s\n", c.Request.Method, c.Request.URL.String())

	if query := c.Request.URL.Query().Encode(); query != "" {
		fmt.Fprintf(&sb, "Query  : %s\n", query)
	}

	if len(c.Request.Header) > 0 {
		sb.WriteString("Headers:\n")
		for key, values := range c.Request.Header {
			fmt.Fprintf(&sb, "  %s: %s\n", key, strings.Join(values, ", "))
		}
	}

	if body := snapshotBody(c); body != "" {
		sb.WriteString("Body   :\n")
		sb.WriteString(indentJSON(body))
	}

	fmt.Fprintf(&sb, "Error  : %s\n", errMsg)

	if len(stack) > 0 {
		sb.WriteString("Stack  :\n")
		for i, line := range stack {
			fmt.Fprintf(&sb, "  [%d] %s\n", i, line)
		}
	}

	return sb.String()
}

// snapshotBody reads and restores the request body so later middleware can
// still consume it.
func snapshotBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

	return string(raw)
}

func indentJSON(raw string) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(raw), "  ", "  "); err != nil {
		return "  " + raw + "\n"
	}

	return pretty.String() + "\n"
}

func captureStackTrace() []string {
	var pcs [stackDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])

	var trace []string
	for {
		frame, more := frames.Next()
		trace = append(trace, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}

	return trace
}

// chunkReport splits a report into pieces small enough for one webhook
// message, breaking on line boundaries where possible.
func chunkReport(report string) []string {
	if len(report) <= reportChunkLen {
		return []string{report}
	}

	var chunks []string
	var current strings.Builder

	for _, line := range strings.SplitAfter(report, "\n") {
		for len(line) > reportChunkLen {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			chunks = append(chunks, line[:reportChunkLen])
			line = line[reportChunkLen:]
		}

		if current.Len()+len(line) > reportChunkLen {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
