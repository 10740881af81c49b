package todo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ghfeed/ghfeed/internal/github"
)

// ErrMalformedKey means an issue key string could not be parsed.
var ErrMalformedKey = errors.New("malformed issue key")

// Key is the identity used to join remote items with local
// annotations, formatted as "owner/repo#123".
type Key struct {
	Owner  string
	Repo   string
	Number int
}

// KeyForItem builds the annotation key for a remote item.
func KeyForItem(it github.Item) Key {
	return Key{Owner: it.Repo.Owner, Repo: it.Repo.Name, Number: it.Number}
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s#%d", k.Owner, k.Repo, k.Number)
}

// ParseKey parses "owner/repo#123". It fails when the '#' separator is
// absent, the repository part has no '/', or the number segment is not
// a non-negative integer.
func ParseKey(s string) (Key, error) {
	repoPart, numPart, ok := strings.Cut(s, "#")
	if !ok {
		return Key{}, fmt.Errorf("%w: %q (want owner/repo#number)", ErrMalformedKey, s)
	}

	owner, repo, ok := strings.Cut(repoPart, "/")
	if !ok || owner == "" || repo == "" {
		return Key{}, fmt.Errorf("%w: %q (want owner/repo#number)", ErrMalformedKey, s)
	}

	number, err := strconv.Atoi(numPart)
	if err != nil || number < 0 {
		return Key{}, fmt.Errorf("%w: %q (issue number must be a non-negative integer)", ErrMalformedKey, s)
	}

	return Key{Owner: owner, Repo: repo, Number: number}, nil
}
