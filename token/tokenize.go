package token

import "bytes"

// Tokenize returns the top level node pairs of src followed by an REOI pair.
// On a syntax error it returns a *TokenizeErr and no pairs.
func Tokenize(src []byte) ([]Pair, error) {
	pd := NewPosDoc(src)
	b := newBalancer()
	for i := 0; i < len(src); {
		end := len(src)
		if j := bytes.IndexByte(src[i:], '\n'); j >= 0 {
			end = i + j
		}
		ln, err := scanLine(pd, src, i, end)
		if err != nil {
			return nil, err
		}
		if ln.kind != lineSkip {
			if err := b.add(&ln); err != nil {
				return nil, err
			}
		}
		i = end + 1
	}
	return append(b.close(), Pair{Rule: REOI, Pos: pd.end()}), nil
}
