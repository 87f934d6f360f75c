package performance

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format 报告格式
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.Wrapf(ErrInvalidConfig, "unknown report format %q", s)
	}
}

// ReportEntry 报告中的一行，时间统一用纳秒
type ReportEntry struct {
	Variant     string  `json:"variant" yaml:"variant"`
	Elements    int     `json:"elements" yaml:"elements"`
	Repetitions int     `json:"repetitions" yaml:"repetitions"`
	Seed        uint64  `json:"seed" yaml:"seed"`
	Calls       int     `json:"calls" yaml:"calls"`
	MinNs       int64   `json:"min_ns" yaml:"min_ns"`
	MedianNs    int64   `json:"median_ns" yaml:"median_ns"`
	MaxNs       int64   `json:"max_ns" yaml:"max_ns"`
	PerCallNs   float64 `json:"per_call_ns" yaml:"per_call_ns"`
}

func NewReport(results []Result) []ReportEntry {
	entries := make([]ReportEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, ReportEntry{
			Variant:     string(r.Variant),
			Elements:    r.Elements,
			Repetitions: r.Repetitions,
			Seed:        r.Seed,
			Calls:       r.Calls,
			MinNs:       r.Stats.Min.Nanoseconds(),
			MedianNs:    r.Stats.Median.Nanoseconds(),
			MaxNs:       r.Stats.Max.Nanoseconds(),
			PerCallNs:   r.Stats.PerCallNs,
		})
	}
	return entries
}

// WriteReport 输出测量结果
func WriteReport(w io.Writer, format Format, results []Result) error {
	entries := NewReport(results)
	switch format {
	case FormatText, "":
		return writeText(w, entries)
	case FormatJSON:
		data, err := sonic.ConfigStd.MarshalIndent(entries, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode json report")
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return errors.Wrap(err, "encode yaml report")
		}
		return enc.Close()
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown report format %q", string(format))
	}
}

// writeText 每种分派方式一段，Min/Max/Time单位为纳秒
func writeText(w io.Writer, entries []ReportEntry) error {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "== %s (elements=%d reps=%d seed=%d)\n", e.Variant, e.Elements, e.Repetitions, e.Seed)
		fmt.Fprintf(&b, "Min: %d\n", e.MinNs)
		fmt.Fprintf(&b, "Max: %d\n", e.MaxNs)
		fmt.Fprintf(&b, "Time: %d\n", e.MedianNs)
		fmt.Fprintf(&b, "Per call: %.3f ns\n", e.PerCallNs)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
