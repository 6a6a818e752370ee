package lsp

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"zinc/internal/codegen"
)

const (
	completionItemKindMethod   = 2
	completionItemKindFunction = 3
	completionItemKindModule   = 9
	completionItemKindKeyword  = 14
)

var topLevel = []completionItem{
	{Label: "print", Kind: completionItemKindFunction, Detail: "println!"},
	{Label: "let", Kind: completionItemKindKeyword},
	{Label: "spider", Kind: completionItemKindModule, Detail: "zinc_std::spider"},
	{Label: "db", Kind: completionItemKindModule, Detail: "zinc_std::db"},
	{Label: "fs", Kind: completionItemKindModule, Detail: "zinc_std::fs"},
	{Label: "json", Kind: completionItemKindModule, Detail: "zinc_std::json"},
	{Label: "html", Kind: completionItemKindModule, Detail: "zinc_std::html"},
	{Label: "py", Kind: completionItemKindModule, Detail: "zinc_std::py"},
	{Label: "leak", Kind: completionItemKindFunction, Detail: "zinc_std::leak"},
	{Label: "loop", Kind: completionItemKindKeyword},
	{Label: "if", Kind: completionItemKindKeyword},
	{Label: "fn", Kind: completionItemKindKeyword},
	{Label: "break", Kind: completionItemKindKeyword},
}

func (s *Server) handleCompletion(msg *rpcMessage) error {
	var params completionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	s.mu.Lock()
	doc, ok := s.docs[params.TextDocument.URI]
	text := ""
	if ok {
		text = doc.text
	}
	s.mu.Unlock()
	items := []completionItem{}
	if ok {
		items = buildCompletion(text, params.Position)
	}
	return s.sendResponse(msg.ID, completionList{Items: items})
}

// buildCompletion offers rewritten methods after `recv.` and top-level names elsewhere,
// filtered by the identifier being typed.
func buildCompletion(text string, pos position) []completionItem {
	prefix := linePrefix(text, offsetForPosition(text, pos))
	word := trailingIdent(prefix)
	before := prefix[:len(prefix)-len(word)]

	items := []completionItem{}
	if recvPart, ok := strings.CutSuffix(before, "."); ok {
		recv := trailingIdent(recvPart)
		if recv == "" {
			return items
		}
		for _, m := range codegen.Methods(recv) {
			if strings.HasPrefix(m, word) {
				items = append(items, completionItem{
					Label:  m,
					Kind:   completionItemKindMethod,
					Detail: arityDetail(codegen.Arities(recv, m)),
				})
			}
		}
		return items
	}
	for _, it := range topLevel {
		if strings.HasPrefix(it.Label, word) {
			items = append(items, it)
		}
	}
	return items
}

func arityDetail(arities []int) string {
	parts := make([]string, len(arities))
	for i, n := range arities {
		parts[i] = strconv.Itoa(n)
	}
	return "args: " + strings.Join(parts, " or ")
}

func trailingIdent(s string) string {
	i := len(s)
	for i > 0 && isIdentByte(s[i-1]) {
		i--
	}
	return s[i:]
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
