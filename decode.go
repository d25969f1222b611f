// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeGrammar reads a JSON-encoded Grammar from r (spec.md §1: the
// grammar-source parser and validator are external collaborators: this
// is the wire format an already-parsed, already-validated AST arrives
// in). Each node carries a "kind" field matching one of the Kind
// constants in ast.go; DecodeGrammar rejects any other kind.
func DecodeGrammar(r io.Reader) (*Grammar, error) {
	var jg jsonGrammar
	if err := json.NewDecoder(r).Decode(&jg); err != nil {
		return nil, fmt.Errorf("decode grammar: %w", err)
	}

	g := &Grammar{
		Initializer:    jg.Initializer,
		HasInitializer: jg.HasInitializer,
		StartRule:      jg.StartRule,
		SourceText:     jg.SourceText,
		Rules:          make(map[string]*Rule, len(jg.Rules)),
	}
	for _, jr := range jg.Rules {
		expr, err := decodeNode(jr.Expr)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", jr.Name, err)
		}
		g.Rules[jr.Name] = &Rule{
			Name:           jr.Name,
			DisplayName:    jr.DisplayName,
			HasDisplayName: jr.HasDisplayName,
			Expr:           expr,
		}
	}
	return g, nil
}

type jsonGrammar struct {
	Initializer    string     `json:"initializer,omitempty"`
	HasInitializer bool       `json:"has_initializer,omitempty"`
	StartRule      string     `json:"start_rule"`
	SourceText     string     `json:"source_text,omitempty"`
	Rules          []jsonRule `json:"rules"`
}

type jsonRule struct {
	Name           string          `json:"name"`
	DisplayName    string          `json:"display_name,omitempty"`
	HasDisplayName bool            `json:"has_display_name,omitempty"`
	Expr           json.RawMessage `json:"expr"`
}

type jsonNode struct {
	Kind string `json:"kind"`

	Alternatives []json.RawMessage `json:"alternatives,omitempty"`
	Elements     []json.RawMessage `json:"elements,omitempty"`
	Expr         json.RawMessage   `json:"expr,omitempty"`
	Label        string            `json:"label,omitempty"`
	Code         string            `json:"code,omitempty"`
	Name         string            `json:"name,omitempty"`
	Value        string            `json:"value,omitempty"`
	Parts        []jsonClassPart   `json:"parts,omitempty"`
	Inverted     bool              `json:"inverted,omitempty"`
	RawText      string            `json:"raw_text,omitempty"`
}

type jsonClassPart struct {
	Lo rune `json:"lo"`
	Hi rune `json:"hi"`
}

func decodeNode(raw json.RawMessage) (Node, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing expression")
	}
	var jn jsonNode
	if err := json.Unmarshal(raw, &jn); err != nil {
		return nil, err
	}

	switch jn.Kind {
	case KindChoice:
		alts, err := decodeNodes(jn.Alternatives)
		if err != nil {
			return nil, err
		}
		return &Choice{Alternatives: alts}, nil
	case KindSequence:
		elems, err := decodeNodes(jn.Elements)
		if err != nil {
			return nil, err
		}
		return &Sequence{Elements: elems}, nil
	case KindLabeled:
		expr, err := decodeNode(jn.Expr)
		if err != nil {
			return nil, err
		}
		return &Labeled{Label: jn.Label, Expr: expr}, nil
	case KindSimpleAnd:
		expr, err := decodeNode(jn.Expr)
		if err != nil {
			return nil, err
		}
		return &SimpleAnd{Expr: expr}, nil
	case KindSimpleNot:
		expr, err := decodeNode(jn.Expr)
		if err != nil {
			return nil, err
		}
		return &SimpleNot{Expr: expr}, nil
	case KindSemanticAnd:
		return &SemanticAnd{Code: jn.Code}, nil
	case KindSemanticNot:
		return &SemanticNot{Code: jn.Code}, nil
	case KindOptional:
		expr, err := decodeNode(jn.Expr)
		if err != nil {
			return nil, err
		}
		return &Optional{Expr: expr}, nil
	case KindZeroOrMore:
		expr, err := decodeNode(jn.Expr)
		if err != nil {
			return nil, err
		}
		return &ZeroOrMore{Expr: expr}, nil
	case KindOneOrMore:
		expr, err := decodeNode(jn.Expr)
		if err != nil {
			return nil, err
		}
		return &OneOrMore{Expr: expr}, nil
	case KindAction:
		expr, err := decodeNode(jn.Expr)
		if err != nil {
			return nil, err
		}
		return &Action{Expr: expr, Code: jn.Code}, nil
	case KindRuleRef:
		return &RuleRef{Name: jn.Name}, nil
	case KindLiteral:
		return &Literal{Value: jn.Value}, nil
	case KindAny:
		return &Any{}, nil
	case KindClass:
		parts := make([]ClassPart, len(jn.Parts))
		for i, p := range jn.Parts {
			parts[i] = ClassPart{Lo: p.Lo, Hi: p.Hi}
		}
		return &Class{Parts: parts, Inverted: jn.Inverted, RawText: jn.RawText}, nil
	default:
		return nil, &UnknownNodeKindError{Kind: jn.Kind}
	}
}

func decodeNodes(raws []json.RawMessage) ([]Node, error) {
	nodes := make([]Node, len(raws))
	for i, raw := range raws {
		n, err := decodeNode(raw)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}
