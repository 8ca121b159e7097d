package group

import "fmt"

// DomainGenerators samples n generators from g by hashing domain-separated
// tags "prefix0", "prefix1", ... onto the curve via MapToGroup, discarding
// any sample that lands on the identity. This mirrors the generator setup
// in the original Sigma protocol test harness, which samples each hi by
// hashing "id0", "id1", ... and rejecting the identity element.
func DomainGenerators(g Group, n int, prefix string) ([]Element, error) {
	out := make([]Element, n)
	for i := 0; i < n; i++ {
		el, err := g.Element().MapToGroup(fmt.Sprintf("%s%d", prefix, i))
		if err != nil {
			return nil, fmt.Errorf("group: hash to curve for generator %d: %w", i, err)
		}
		if el.IsIdentity() {
			return nil, fmt.Errorf("group: generator %d hashed to the identity", i)
		}
		out[i] = el
	}
	return out, nil
}
