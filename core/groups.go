package core

import "fmt"

// TagGroup is a contiguous run of tags introduced by a structure marker.
// Tags includes the marker itself as the first element; Name is the
// marker's value.
type TagGroup struct {
	Name string
	Tags Tags
}

// Partition splits a flat tag sequence into groups at structure markers
// (group code 0). Every tag belongs to exactly one group; tags before the
// first marker are rejected. The partition is deterministic: a single
// left-to-right pass with no hidden state.
func Partition(tags Tags) ([]TagGroup, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("empty tag sequence: %w", ErrStructure)
	}
	if !tags[0].IsMarker() {
		return nil, fmt.Errorf("sequence starts with group code %d, expected a marker: %w", tags[0].Code, ErrStructure)
	}

	var groups []TagGroup
	start := 0
	for i := 1; i < len(tags); i++ {
		if tags[i].IsMarker() {
			groups = append(groups, TagGroup{
				Name: tags[start].Value.String(),
				Tags: tags[start:i],
			})
			start = i
		}
	}
	groups = append(groups, TagGroup{
		Name: tags[start].Value.String(),
		Tags: tags[start:],
	})
	return groups, nil
}

// GroupTags partitions a structural block and validates its sentinels:
// the first group must be named opening and the last closing. The
// sentinel groups are returned along with the entry groups between them.
func GroupTags(tags Tags, opening, closing string) ([]TagGroup, error) {
	groups, err := Partition(tags)
	if err != nil {
		return nil, err
	}
	if groups[0].Name != opening {
		return nil, fmt.Errorf("block opens with %q, expected %q: %w", groups[0].Name, opening, ErrStructure)
	}
	last := groups[len(groups)-1]
	if last.Name != closing {
		return nil, fmt.Errorf("block closes with %q, expected %q: %w", last.Name, closing, ErrStructure)
	}
	return groups, nil
}
