package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/katalvlaran/vesatiming/timing"
)

// Supported lists the label languages; the first entry is the fallback.
var Supported = []language.Tag{language.English, language.SimplifiedChinese}

// keyError is the catalog key of the error line; it takes the error text.
const keyError = "error_line"

var (
	matcher = language.NewMatcher(Supported)
	labels  = buildCatalog()
)

// labelSet maps parameter names (and keyError) to display strings.
type labelSet map[string]string

func buildCatalog() *catalog.Builder {
	sets := map[language.Tag]labelSet{
		language.English: {
			timing.ParamPixelClock:  "Pixel Clock",
			timing.ParamRefreshRate: "Refresh Rate",
			timing.ParamHTotal:      "H Total",
			timing.ParamHBlanking:   "H Blanking",
			timing.ParamHFrontPorch: "H Front Porch",
			timing.ParamHSyncPulse:  "H Sync Pulse",
			timing.ParamHBackPorch:  "H Back Porch",
			timing.ParamVTotal:      "V Total",
			timing.ParamVBlanking:   "V Blanking",
			timing.ParamVFrontPorch: "V Front Porch",
			timing.ParamVSyncPulse:  "V Sync Pulse",
			timing.ParamVBackPorch:  "V Back Porch",
			keyError:                "Error: %s",
		},
		language.SimplifiedChinese: {
			timing.ParamPixelClock:  "像素时钟",
			timing.ParamRefreshRate: "刷新率",
			timing.ParamHTotal:      "水平总像素",
			timing.ParamHBlanking:   "水平消隐区",
			timing.ParamHFrontPorch: "水平前廊",
			timing.ParamHSyncPulse:  "水平同步脉冲",
			timing.ParamHBackPorch:  "水平后廊",
			timing.ParamVTotal:      "垂直总行数",
			timing.ParamVBlanking:   "垂直消隐区",
			timing.ParamVFrontPorch: "垂直前廊",
			timing.ParamVSyncPulse:  "垂直同步脉冲",
			timing.ParamVBackPorch:  "垂直后廊",
			keyError:                "错误: %s",
		},
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, set := range sets {
		for key, msg := range set {
			// SetString only fails on malformed messages; the table above is static.
			if err := b.SetString(tag, key, msg); err != nil {
				panic("report: bad catalog entry " + key + ": " + err.Error())
			}
		}
	}

	return b
}

// printer returns a message printer bound to the label catalog.
func printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag), message.Catalog(labels))
}

// Label returns the display label of a parameter name in tag's language.
func Label(name string, tag language.Tag) string {
	return printer(tag).Sprintf(name)
}

// Match returns the supported tag closest to tag, or English.
func Match(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// MatchLanguage maps a locale string ("zh_CN.UTF-8", "en-US", "zh-Hans", "")
// to a supported tag. Unparseable input yields English.
func MatchLanguage(locale string) language.Tag {
	s := strings.TrimSpace(locale)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return Supported[0]
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Supported[0]
	}
	return Match(tag)
}
