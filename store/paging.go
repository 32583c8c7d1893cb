package store

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ccbrown/gqlbench/model"
)

// ConvertLength converts a length in meters to the given unit.
func ConvertLength(meters float64, unit model.LengthUnit) float64 {
	if unit == model.LengthUnitFoot {
		return meters * 3.28084
	}
	return meters
}

const cursorPrefix = "cursor"

// EncodeCursor returns the cursor for the element at index i of a friends list.
func EncodeCursor(i int) string {
	return base64.StdEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(i+1)))
}

// DecodeCursor returns the index of the first element after the given cursor.
func DecodeCursor(cursor string) (int, error) {
	b, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, errors.Wrap(err, "malformed cursor")
	}
	s := string(b)
	if !strings.HasPrefix(s, cursorPrefix) {
		return 0, errors.New("malformed cursor")
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, cursorPrefix))
	if err != nil || n < 0 {
		return 0, errors.New("malformed cursor")
	}
	return n, nil
}

// FriendsPage is a window over a character's friend ids.
type FriendsPage struct {
	Ids  []string
	From int
	To   int
}

// NewFriendsPage returns the page of ids starting after the given cursor. If first is non-nil, the
// page holds at most that many ids.
func NewFriendsPage(ids []string, first *int, after *string) (*FriendsPage, error) {
	from := 0
	if after != nil {
		n, err := DecodeCursor(*after)
		if err != nil {
			return nil, err
		}
		from = n
	}
	if from > len(ids) {
		from = len(ids)
	}

	to := len(ids)
	if first != nil {
		if *first < 0 {
			return nil, errors.New("first must not be negative")
		}
		if from+*first < to {
			to = from + *first
		}
	}

	return &FriendsPage{
		Ids:  ids,
		From: from,
		To:   to,
	}, nil
}

func (p *FriendsPage) TotalCount() int {
	return len(p.Ids)
}

// Edges returns the indices of the ids in the page.
func (p *FriendsPage) Edges() []int {
	ret := make([]int, 0, p.To-p.From)
	for i := p.From; i < p.To; i++ {
		ret = append(ret, i)
	}
	return ret
}

// PageIds returns the ids in the page.
func (p *FriendsPage) PageIds() []string {
	return p.Ids[p.From:p.To]
}

// StartCursor returns nil if the page is empty.
func (p *FriendsPage) StartCursor() *string {
	if p.From >= p.To {
		return nil
	}
	c := EncodeCursor(p.From)
	return &c
}

// EndCursor returns nil if the page is empty.
func (p *FriendsPage) EndCursor() *string {
	if p.From >= p.To {
		return nil
	}
	c := EncodeCursor(p.To - 1)
	return &c
}

func (p *FriendsPage) HasNextPage() bool {
	return p.To < len(p.Ids)
}
