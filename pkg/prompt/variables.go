package prompt

import "strings"

// VarRef is a variable reference found in a template body. HasDefault is set
// when the reference appears in an expression guarded by the default filter,
// which makes the variable optional under strict rendering.
type VarRef struct {
	Name       string
	HasDefault bool
}

// keywords are identifiers that never name a context variable: expression
// operators, literals, and the implicit loop variables the engine provides.
var keywords = map[string]struct{}{
	"and": {}, "or": {}, "not": {}, "in": {}, "is": {},
	"if": {}, "else": {}, "as": {}, "with": {}, "only": {},
	"true": {}, "false": {}, "True": {}, "False": {},
	"none": {}, "None": {}, "nil": {},
	"forloop": {}, "loop": {}, "block": {}, "super": {}, "reversed": {},
}

type token struct {
	ident bool
	val   string
}

type region struct {
	stmt   bool
	tokens []token
}

// ScanVariables statically extracts the variables a template body references.
// It walks every output ({{ }}) and statement ({% %}) region, skipping string
// and number literals, attribute lookups, filter names, and names bound by
// for/set/with/macro statements. The scan is lexical: a variable anywhere in
// a region that pipes through the default filter is treated as defaulted.
func ScanVariables(body string) []VarRef {
	declared := map[string]struct{}{}
	refs := map[string]*VarRef{}
	var order []string

	note := func(name string, hasDefault bool) {
		if name == "" {
			return
		}
		if _, ok := keywords[name]; ok {
			return
		}
		if _, ok := declared[name]; ok {
			return
		}
		ref, ok := refs[name]
		if !ok {
			ref = &VarRef{Name: name}
			refs[name] = ref
			order = append(order, name)
		}
		if hasDefault {
			ref.HasDefault = true
		}
	}

	for _, reg := range splitRegions(body) {
		names, decls, hasDefault := scanRegion(reg)
		for _, d := range decls {
			declared[d] = struct{}{}
		}
		for _, n := range names {
			note(n, hasDefault)
		}
	}

	out := make([]VarRef, 0, len(order))
	for _, name := range order {
		out = append(out, *refs[name])
	}
	return out
}

// splitRegions extracts the tokenized contents of every template region,
// discarding literal text and comments.
func splitRegions(body string) []region {
	var regions []region
	for i := 0; i < len(body); {
		open := strings.IndexByte(body[i:], '{')
		if open < 0 || i+open+1 >= len(body) {
			break
		}
		start := i + open
		switch body[start+1] {
		case '{':
			end := strings.Index(body[start+2:], "}}")
			if end < 0 {
				return regions
			}
			regions = append(regions, region{stmt: false, tokens: tokenize(body[start+2 : start+2+end])})
			i = start + 2 + end + 2
		case '%':
			end := strings.Index(body[start+2:], "%}")
			if end < 0 {
				return regions
			}
			regions = append(regions, region{stmt: true, tokens: tokenize(body[start+2 : start+2+end])})
			i = start + 2 + end + 2
		case '#':
			end := strings.Index(body[start+2:], "#}")
			if end < 0 {
				return regions
			}
			i = start + 2 + end + 2
		default:
			i = start + 1
		}
	}
	return regions
}

func tokenize(text string) []token {
	var tokens []token
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '\'' || c == '"':
			j := i + 1
			for j < len(text) && text[j] != c {
				if text[j] == '\\' {
					j++
				}
				j++
			}
			i = j + 1
		case isIdentStart(c):
			j := i + 1
			for j < len(text) && isIdentPart(text[j]) {
				j++
			}
			tokens = append(tokens, token{ident: true, val: text[i:j]})
			i = j
		case c >= '0' && c <= '9':
			j := i + 1
			for j < len(text) && (isIdentPart(text[j]) || text[j] == '.') {
				j++
			}
			i = j
		default:
			tokens = append(tokens, token{val: string(c)})
			i++
		}
	}
	return tokens
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// scanRegion classifies the identifiers of one region into references and
// declarations, and reports whether the region uses the default filter.
func scanRegion(reg region) (names, decls []string, hasDefault bool) {
	tokens := reg.tokens
	if len(tokens) == 0 {
		return nil, nil, false
	}

	exprStart := 0
	if reg.stmt && tokens[0].ident {
		tag := tokens[0].val
		exprStart = 1
		switch tag {
		case "for":
			// Names before "in" are loop-bound.
			i := 1
			for ; i < len(tokens); i++ {
				if tokens[i].ident && tokens[i].val == "in" {
					i++
					break
				}
				if tokens[i].ident {
					decls = append(decls, tokens[i].val)
				}
			}
			exprStart = i
		case "set":
			if len(tokens) > 1 && tokens[1].ident {
				decls = append(decls, tokens[1].val)
			}
			exprStart = 2
		case "with":
			// {% with a=expr b=expr %}: left-hand names are bound.
			for i := 1; i < len(tokens); i++ {
				if tokens[i].ident && i+1 < len(tokens) && tokens[i+1].val == "=" {
					decls = append(decls, tokens[i].val)
				}
			}
		case "macro":
			// The macro name and its parameters are all bound names.
			for i := 1; i < len(tokens); i++ {
				if tokens[i].ident {
					decls = append(decls, tokens[i].val)
				}
			}
			return nil, decls, false
		case "block", "endblock", "filter", "endfilter", "comment", "endcomment",
			"endfor", "endif", "endwith", "endmacro", "endset", "autoescape", "endautoescape":
			return nil, decls, false
		}
	}

	for i := exprStart; i < len(tokens); i++ {
		tok := tokens[i]
		if !tok.ident {
			continue
		}
		if i > 0 && tokens[i-1].val == "." {
			continue
		}
		if i > 0 && tokens[i-1].val == "|" {
			if tok.val == "default" {
				hasDefault = true
			}
			continue
		}
		// Skip left-hand names already bound by this region.
		if reg.stmt && i+1 < len(tokens) && tokens[i+1].val == "=" {
			continue
		}
		names = append(names, tok.val)
	}
	return names, decls, hasDefault
}
