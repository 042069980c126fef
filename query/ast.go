// Package query defines the query tree: the boolean AST produced by
// BuildTree and consumed by Evaluate, plus the pieces that don't need a
// read-only Context to compute (tokenizing the raw query string, and
// tracking which original words a synthetic query id stands in for).
package query

import (
	"fmt"
	"strings"
)

// ID identifies a leaf query within a tree. BuildTree in the root
// package allocates them as follows: a single-word leaf at original
// position i seeds ID(i); synthetic ids derived from position i for an
// n-gram are drawn from ((i+1)*100^n)..
//
// ID participates in neither Equal nor a Leaf's memo key -- see Leaf.
type ID int

// Op is a node in the query tree: And, Or, or Leaf.
type Op interface {
	fmt.Stringer

	// key returns a canonical, ID-independent string used to dedupe
	// structurally equal subtrees in the evaluator's memo. Two Ops with
	// the same key must be evaluated identically against any Context.
	key() string
}

// And is matched when every child is.
type And struct {
	Children []Op
}

// Or is matched when any child is.
type Or struct {
	Children []Op
}

// Leaf is a single term-matching query. Two leaves compare equal, and
// hash equal in the evaluator's memo, when their Prefix and Kind match --
// ID is deliberately excluded (spec data model, "Query").
type Leaf struct {
	ID     ID
	Prefix bool
	Kind   Kind
}

// Kind is the payload of a Leaf: Tolerant, Exact, or Phrase.
type Kind interface {
	fmt.Stringer
	kindKey() string
}

// Tolerant matches word using the index's own tolerance rules (edit
// distance, stemming, ...); the core treats it as an opaque single-term
// lookup (spec §4.F.1).
type Tolerant struct {
	Word string
}

// Exact matches word precisely.
type Exact struct {
	Word string
}

// Phrase matches two consecutive occurrences: First immediately followed
// by Second in the same document.
type Phrase struct {
	First, Second string
}

func (k Tolerant) String() string  { return fmt.Sprintf("tolerant(%q)", k.Word) }
func (k Tolerant) kindKey() string { return "t:" + k.Word }

func (k Exact) String() string  { return fmt.Sprintf("exact(%q)", k.Word) }
func (k Exact) kindKey() string { return "e:" + k.Word }

func (k Phrase) String() string  { return fmt.Sprintf("phrase(%q, %q)", k.First, k.Second) }
func (k Phrase) kindKey() string { return "p:" + k.First + "\x00" + k.Second }

// NewAnd builds an And node, collapsing to the single child when len(qs)
// == 1 (the builder's normalization rule, spec §4.E).
func NewAnd(qs ...Op) Op {
	if len(qs) == 1 {
		return qs[0]
	}
	return &And{Children: qs}
}

// NewOr builds an Or node, collapsing to the single child when len(qs)
// == 1.
func NewOr(qs ...Op) Op {
	if len(qs) == 1 {
		return qs[0]
	}
	return &Or{Children: qs}
}

func (q *And) String() string {
	sub := make([]string, len(q.Children))
	for i, ch := range q.Children {
		sub[i] = ch.String()
	}
	return fmt.Sprintf("(and %s)", strings.Join(sub, " "))
}

func (q *Or) String() string {
	sub := make([]string, len(q.Children))
	for i, ch := range q.Children {
		sub[i] = ch.String()
	}
	return fmt.Sprintf("(or %s)", strings.Join(sub, " "))
}

func (q *Leaf) String() string {
	if q.Prefix {
		return fmt.Sprintf("leaf#%d*%s", q.ID, q.Kind)
	}
	return fmt.Sprintf("leaf#%d %s", q.ID, q.Kind)
}

func (q *And) key() string {
	return joinKeys("and", q.Children)
}

func (q *Or) key() string {
	return joinKeys("or", q.Children)
}

func (q *Leaf) key() string {
	if q.Prefix {
		return "L*" + q.Kind.kindKey()
	}
	return "L " + q.Kind.kindKey()
}

func joinKeys(op string, children []Op) string {
	var b strings.Builder
	b.WriteString(op)
	for _, ch := range children {
		b.WriteByte('\x1f')
		b.WriteString(ch.key())
	}
	return b.String()
}

// Key exposes the canonical structural key used by the evaluator's memo.
// Equal subtrees (ignoring leaf ID) produce the same Key.
func Key(op Op) string { return op.key() }

// Equal reports whether a and b are the same query irrespective of leaf
// IDs -- the equality relation spec.md's data model defines for Query and
// Operation.
func Equal(a, b Op) bool { return a.key() == b.key() }

// VisitLeaves calls f on every Leaf reachable from op, in tree order.
func VisitLeaves(op Op, f func(*Leaf)) {
	switch o := op.(type) {
	case *And:
		for _, ch := range o.Children {
			VisitLeaves(ch, f)
		}
	case *Or:
		for _, ch := range o.Children {
			VisitLeaves(ch, f)
		}
	case *Leaf:
		f(o)
	}
}
