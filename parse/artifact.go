package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ArtifactType identifies the kind of embedded mini-application found in a
// message.
type ArtifactType string

const (
	ArtifactHTML       ArtifactType = "html"
	ArtifactReact      ArtifactType = "react"
	ArtifactJavaScript ArtifactType = "javascript"
	ArtifactSVG        ArtifactType = "svg"
	ArtifactPython     ArtifactType = "python"
	ArtifactMermaid    ArtifactType = "mermaid"
)

// Artifact is an embedded mini-application lifted out of message text for
// separate rendering. Artifacts are value objects: identity is assigned at
// extraction time and they are never mutated afterwards.
type Artifact struct {
	ID    string       `json:"id"`
	Type  ArtifactType `json:"type"`
	Title string       `json:"title"`
	Code  string       `json:"code"`
}

const artifactTypePattern = "html|react|javascript|python|svg|mermaid"

var (
	// Element form: <artifact type="T" title="optional">body</artifact>.
	artifactElementRe = regexp.MustCompile(`(?s)<artifact\s+type="(` + artifactTypePattern + `)"(?:\s+title="([^"]*)")?\s*>(.*?)</artifact>`)

	// Fenced form: an opening fence whose info string is artifact-<T>,
	// closed by a matching fence.
	artifactFenceRe = regexp.MustCompile("(?s)```artifact-(" + artifactTypePattern + ")[ \t]*\n(.*?)```")
)

// fenceLanguageTypes maps plain code-fence language tokens to artifact types,
// for callers that treat ordinary fences as implicit artifacts behind a
// feature flag. A pure lookup, not part of extraction.
var fenceLanguageTypes = map[string]ArtifactType{
	"html":       ArtifactHTML,
	"svg":        ArtifactSVG,
	"jsx":        ArtifactReact,
	"tsx":        ArtifactReact,
	"react":      ArtifactReact,
	"javascript": ArtifactJavaScript,
	"js":         ArtifactJavaScript,
	"python":     ArtifactPython,
	"py":         ArtifactPython,
	"mermaid":    ArtifactMermaid,
}

// ArtifactTypeForLanguage maps a code-fence language token to an artifact
// type. The second return reports whether the language has a mapping.
func ArtifactTypeForLanguage(lang string) (ArtifactType, bool) {
	t, ok := fenceLanguageTypes[strings.ToLower(strings.TrimSpace(lang))]
	return t, ok
}

// ExtractArtifacts finds every artifact in text, in document order, and
// returns the extracted artifacts together with the remaining text, where
// each occurrence is replaced by a short "[Artifact: …]" placeholder.
//
// An unterminated artifact block simply fails to match and is left as plain
// text; extraction never errors.
func ExtractArtifacts(text string) ([]Artifact, string) {
	if text == "" {
		return nil, ""
	}

	var artifacts []Artifact
	stamp := time.Now().UnixMilli()

	// Both grammars are scanned together: at each step the match starting
	// at the lowest offset wins, so indices follow document order even when
	// the forms interleave.
	var out strings.Builder
	rest := text
	for rest != "" {
		elem := artifactElementRe.FindStringSubmatchIndex(rest)
		fence := artifactFenceRe.FindStringSubmatchIndex(rest)
		loc, fenced := elem, false
		if loc == nil || (fence != nil && fence[0] < loc[0]) {
			loc, fenced = fence, true
		}
		if loc == nil {
			out.WriteString(rest)
			break
		}

		var title, body string
		if fenced {
			body = rest[loc[4]:loc[5]]
		} else {
			if loc[4] >= 0 {
				title = rest[loc[4]:loc[5]]
			}
			body = rest[loc[6]:loc[7]]
		}
		a := Artifact{
			ID:    fmt.Sprintf("artifact-%d-%d", len(artifacts), stamp),
			Type:  ArtifactType(rest[loc[2]:loc[3]]),
			Title: title,
			Code:  strings.TrimSpace(body),
		}
		artifacts = append(artifacts, a)

		out.WriteString(rest[:loc[0]])
		out.WriteString("[Artifact: " + a.displayName() + "]")
		rest = rest[loc[1]:]
	}

	return artifacts, out.String()
}

// displayName is the placeholder label: the title when present, the type
// otherwise.
func (a Artifact) displayName() string {
	if a.Title != "" {
		return a.Title
	}
	return string(a.Type)
}
