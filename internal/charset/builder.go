package charset

import (
	"unicode/utf8"

	"github.com/jonathan/fontmerge/internal/types"
)

// BuildTarget derives the target codepoint set: the printable ASCII range,
// plus every distinct scalar value found in the corpus texts, plus the
// enabled named block ranges. With no corpus and no blocks the result is
// exactly the 95 printable ASCII codepoints.
func BuildTarget(corpusTexts [][]byte, blocks Blocks) types.CodeSet {
	target := make(types.CodeSet)
	target.AddRange(asciiBasic.Lo, asciiBasic.Hi)

	for _, text := range corpusTexts {
		addScalars(target, text)
	}

	if blocks.Latin1 {
		target.AddRange(latin1Sup.Lo, latin1Sup.Hi)
	}
	if blocks.CJKPunct {
		target.AddRange(cjkPunct.Lo, cjkPunct.Hi)
	}
	if blocks.JPSyllabaries {
		target.AddRange(hiragana.Lo, hiragana.Hi)
		target.AddRange(katakana.Lo, katakana.Hi)
	}
	if blocks.Halfwidth {
		target.AddRange(halfwidth.Lo, halfwidth.Hi)
	}
	if blocks.HanBasic {
		target.AddRange(cjkUnified.Lo, cjkUnified.Hi)
		target.AddRange(cjkExtA.Lo, cjkExtA.Hi)
		target.AddRange(cjkCompat.Lo, cjkCompat.Hi)
	}

	return target
}

// addScalars decodes text as UTF-8 and adds each scalar value to the set.
// Invalid byte sequences are skipped rather than failing the run; grapheme
// clusters are not treated specially, every scalar is added on its own.
func addScalars(target types.CodeSet, text []byte) {
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		if r == utf8.RuneError && size == 1 {
			// Invalid byte; skip it.
			text = text[1:]
			continue
		}
		target.Add(r)
		text = text[size:]
	}
}
