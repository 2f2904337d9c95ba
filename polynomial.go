package gmdh

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bauman-team/GMDH/internal/combination"
	"github.com/bauman-team/GMDH/internal/core"
)

// maxExpandedTerms bounds full symbolic substitution back to originals
// (spec.md §4.9's resolution of the get_best_polynomial Open Question):
// above this many monomials, GetBestPolynomial falls back to a nested form
// naming intermediate combinations f_{layer,idx} instead.
const maxExpandedTerms = 64

const coeffEpsilon = 1e-9

// getBestPolynomial renders m's best Combination as spec.md §6 describes:
// Combi/Multi are always fully expanded to originals (their Inputs are
// already original-feature indices, so no substitution is needed); Mia/Ria
// attempt full symbolic substitution and fall back to a nested form with
// named intermediates when that would blow up past maxExpandedTerms.
func getBestPolynomial(m *core.Model) string {
	best := m.Best()
	if best.Kind == combination.Multilinear {
		return renderExpanded(expandMultilinearSymbolic(best))
	}

	memo := make(map[[2]int]polynomial)
	expanded := symbolic(m, m.BestLayerIdx, m.BestComboIdx, memo)
	if len(expanded) <= maxExpandedTerms {
		return renderExpanded(expanded)
	}
	return renderNested(m)
}

// --- symbolic polynomial algebra over original feature variables ---

type monomial struct {
	coeff float64
	exp   map[int]int // original variable index -> exponent
}

type polynomial []monomial

func constPoly(c float64) polynomial {
	return polynomial{{coeff: c, exp: map[int]int{}}}
}

func varPoly(idx int) polynomial {
	return polynomial{{coeff: 1, exp: map[int]int{idx: 1}}}
}

func scalePoly(p polynomial, s float64) polynomial {
	out := make(polynomial, len(p))
	for i, m := range p {
		out[i] = monomial{coeff: m.coeff * s, exp: m.exp}
	}
	return out
}

func addPoly(a, b polynomial) polynomial {
	merged := map[string]monomial{}
	for _, m := range a {
		k := expKey(m.exp)
		e := merged[k]
		e.exp = m.exp
		e.coeff += m.coeff
		merged[k] = e
	}
	for _, m := range b {
		k := expKey(m.exp)
		e := merged[k]
		e.exp = m.exp
		e.coeff += m.coeff
		merged[k] = e
	}
	return flattenNonZero(merged)
}

func mulPoly(a, b polynomial) polynomial {
	merged := map[string]monomial{}
	for _, ma := range a {
		for _, mb := range b {
			exp := map[int]int{}
			for k, v := range ma.exp {
				exp[k] += v
			}
			for k, v := range mb.exp {
				exp[k] += v
			}
			k := expKey(exp)
			e := merged[k]
			e.exp = exp
			e.coeff += ma.coeff * mb.coeff
			merged[k] = e
		}
	}
	return flattenNonZero(merged)
}

func flattenNonZero(merged map[string]monomial) polynomial {
	out := make(polynomial, 0, len(merged))
	for _, m := range merged {
		if math.Abs(m.coeff) > coeffEpsilon {
			out = append(out, m)
		}
	}
	return out
}

func expKey(exp map[int]int) string {
	keys := make([]int, 0, len(exp))
	for k := range exp {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%d^%d;", k, exp[k])
	}
	return b.String()
}

// symbolic recursively substitutes a combination's inputs with their own
// symbolic form until everything is expressed in original variables,
// memoized per (layerIdx, comboIdx) since one layer's output can feed
// several later combinations.
func symbolic(m *core.Model, layerIdx, comboIdx int, memo map[[2]int]polynomial) polynomial {
	key := [2]int{layerIdx, comboIdx}
	if v, ok := memo[key]; ok {
		return v
	}
	c := m.Layers[layerIdx].Combinations[comboIdx]
	subs := make([]polynomial, len(c.Inputs))
	for i, idx := range c.Inputs {
		if idx < m.NFeatures {
			subs[i] = varPoly(idx)
		} else {
			subs[i] = symbolic(m, layerIdx-1, idx-m.NFeatures, memo)
		}
	}

	var result polynomial
	if c.Kind == combination.Multilinear {
		result = constPoly(c.Coeffs[0])
		for i, sp := range subs {
			result = addPoly(result, scalePoly(sp, c.Coeffs[i+1]))
		}
	} else {
		u, v := subs[0], subs[1]
		result = constPoly(c.Coeffs[0])
		result = addPoly(result, scalePoly(u, c.Coeffs[1]))
		result = addPoly(result, scalePoly(v, c.Coeffs[2]))
		if len(c.Coeffs) > 3 {
			result = addPoly(result, scalePoly(mulPoly(u, v), c.Coeffs[3]))
		}
		if len(c.Coeffs) > 4 {
			result = addPoly(result, scalePoly(mulPoly(u, u), c.Coeffs[4]))
			result = addPoly(result, scalePoly(mulPoly(v, v), c.Coeffs[5]))
		}
	}
	memo[key] = result
	return result
}

// expandMultilinearSymbolic builds the (trivial, already-expanded) symbolic
// form of a Combi/Multi combination: its Inputs are already original
// variable indices, so no substitution is needed.
func expandMultilinearSymbolic(c *combination.Combination) polynomial {
	result := constPoly(c.Coeffs[0])
	for i, idx := range c.Inputs {
		result = addPoly(result, scalePoly(varPoly(idx), c.Coeffs[i+1]))
	}
	return result
}

// renderExpanded prints a fully-expanded symbolic polynomial as
// "y = w1*x1 + w2*x1^2*x2 + ... + w0", terms ordered by ascending total
// degree then ascending variable index, dropping near-zero coefficients. The
// constant term (degree 0) always renders last regardless of degree order,
// matching spec.md §8 S4's literal "y = x1^2 + 10*x2^2 + 80".
func renderExpanded(p polynomial) string {
	degreeKey := func(exp map[int]int) int {
		if d := degree(exp); d > 0 {
			return d
		}
		return math.MaxInt32
	}
	sort.Slice(p, func(i, j int) bool {
		di, dj := degreeKey(p[i].exp), degreeKey(p[j].exp)
		if di != dj {
			return di < dj
		}
		return expKey(p[i].exp) < expKey(p[j].exp)
	})

	var b strings.Builder
	b.WriteString("y = ")
	first := true
	for _, m := range p {
		term := renderTerm(m)
		if term == "" {
			continue
		}
		if first {
			b.WriteString(term)
			first = false
			continue
		}
		if m.coeff < 0 {
			b.WriteString(" - ")
			b.WriteString(renderMonomialBody(-m.coeff, m.exp))
		} else {
			b.WriteString(" + ")
			b.WriteString(renderMonomialBody(m.coeff, m.exp))
		}
	}
	if first {
		b.WriteString("0")
	}
	return b.String()
}

func renderTerm(m monomial) string {
	if math.Abs(m.coeff) <= coeffEpsilon {
		return ""
	}
	return renderMonomialBody(m.coeff, m.exp)
}

func renderMonomialBody(coeff float64, exp map[int]int) string {
	if len(exp) == 0 {
		return formatNum(coeff)
	}
	keys := make([]int, 0, len(exp))
	for k := range exp {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	var parts []string
	if math.Abs(coeff-1) > coeffEpsilon {
		parts = append(parts, formatNum(coeff))
	}
	for _, k := range keys {
		name := fmt.Sprintf("x%d", k+1)
		if exp[k] > 1 {
			name = fmt.Sprintf("%s^%d", name, exp[k])
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, "*")
}

func degree(exp map[int]int) int {
	d := 0
	for _, v := range exp {
		d += v
	}
	return d
}

func formatNum(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", v), "0"), ".")
}

// renderNested prints the best Combination's own formula in terms of its
// immediate inputs only (originals or f_{layer,idx} names for the preceding
// layer's survivors), without recursively substituting further — the
// fallback used when full expansion would exceed maxExpandedTerms.
func renderNested(m *core.Model) string {
	return "y = " + renderCombinationFormula(m.Best(), m.BestLayerIdx, m.NFeatures)
}

func renderCombinationFormula(c *combination.Combination, layerIdx, f int) string {
	names := make([]string, len(c.Inputs))
	for i, idx := range c.Inputs {
		if idx < f {
			names[i] = fmt.Sprintf("x%d", idx+1)
		} else {
			names[i] = fmt.Sprintf("f_%d_%d", layerIdx, idx-f)
		}
	}

	var terms []string
	terms = append(terms, formatNum(c.Coeffs[0]))
	if c.Kind == combination.Multilinear {
		for i, name := range names {
			terms = append(terms, fmt.Sprintf("%s*%s", formatNum(c.Coeffs[i+1]), name))
		}
	} else {
		u, v := names[0], names[1]
		terms = append(terms, fmt.Sprintf("%s*%s", formatNum(c.Coeffs[1]), u))
		terms = append(terms, fmt.Sprintf("%s*%s", formatNum(c.Coeffs[2]), v))
		if len(c.Coeffs) > 3 {
			terms = append(terms, fmt.Sprintf("%s*%s*%s", formatNum(c.Coeffs[3]), u, v))
		}
		if len(c.Coeffs) > 4 {
			terms = append(terms, fmt.Sprintf("%s*%s^2", formatNum(c.Coeffs[4]), u))
			terms = append(terms, fmt.Sprintf("%s*%s^2", formatNum(c.Coeffs[5]), v))
		}
	}
	return strings.Join(terms, " + ")
}
