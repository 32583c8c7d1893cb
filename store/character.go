package store

import (
	"strings"

	"github.com/ccbrown/gqlbench/model"
)

// CharacterRepository serves the static humans, droids, and starships.
type CharacterRepository struct {
	humans    []*model.Human
	droids    []*model.Droid
	starships []*model.Starship

	humansById    map[string]*model.Human
	droidsById    map[string]*model.Droid
	starshipsById map[string]*model.Starship
}

func NewCharacterRepository() *CharacterRepository {
	r := &CharacterRepository{
		humans:        seedHumans(),
		droids:        seedDroids(),
		starships:     seedStarships(),
		humansById:    map[string]*model.Human{},
		droidsById:    map[string]*model.Droid{},
		starshipsById: map[string]*model.Starship{},
	}
	for _, h := range r.humans {
		r.humansById[h.Id] = h
	}
	for _, d := range r.droids {
		r.droidsById[d.Id] = d
	}
	for _, s := range r.starships {
		r.starshipsById[s.Id] = s
	}
	return r
}

// Hero returns the hero of the given episode. Luke is the hero of The Empire Strikes Back, R2-D2 is
// the hero of everything else.
func (r *CharacterRepository) Hero(episode model.Episode) model.Character {
	if episode == model.EpisodeEmpire {
		return r.humansById["1000"]
	}
	return r.droidsById["2001"]
}

// Character returns nil if no human or droid has the given id.
func (r *CharacterRepository) Character(id string) model.Character {
	if h, ok := r.humansById[id]; ok {
		return h
	}
	if d, ok := r.droidsById[id]; ok {
		return d
	}
	return nil
}

// Characters returns the characters with the given ids. Unknown ids are skipped.
func (r *CharacterRepository) Characters(ids ...string) []model.Character {
	ret := make([]model.Character, 0, len(ids))
	for _, id := range ids {
		if c := r.Character(id); c != nil {
			ret = append(ret, c)
		}
	}
	return ret
}

func (r *CharacterRepository) Human(id string) *model.Human {
	return r.humansById[id]
}

func (r *CharacterRepository) Droid(id string) *model.Droid {
	return r.droidsById[id]
}

func (r *CharacterRepository) Starship(id string) *model.Starship {
	return r.starshipsById[id]
}

func (r *CharacterRepository) Starships(ids ...string) []*model.Starship {
	ret := make([]*model.Starship, 0, len(ids))
	for _, id := range ids {
		if s, ok := r.starshipsById[id]; ok {
			ret = append(ret, s)
		}
	}
	return ret
}

// Search returns every human, droid, and starship whose name contains text, ignoring case. Humans
// come first, then droids, then starships, each in seed order.
func (r *CharacterRepository) Search(text string) []interface{} {
	text = strings.ToLower(text)
	var ret []interface{}
	for _, h := range r.humans {
		if strings.Contains(strings.ToLower(h.Name), text) {
			ret = append(ret, h)
		}
	}
	for _, d := range r.droids {
		if strings.Contains(strings.ToLower(d.Name), text) {
			ret = append(ret, d)
		}
	}
	for _, s := range r.starships {
		if strings.Contains(strings.ToLower(s.Name), text) {
			ret = append(ret, s)
		}
	}
	return ret
}

var allEpisodes = []model.Episode{model.EpisodeNewHope, model.EpisodeEmpire, model.EpisodeJedi}

func seedHumans() []*model.Human {
	return []*model.Human{
		{
			Id:        "1000",
			Name:      "Luke Skywalker",
			Friends:   []string{"1002", "1003", "2000", "2001"},
			AppearsIn: allEpisodes,
			Height:    1.72,
			Mass:      77,
			Starships: []string{"3001", "3003"},
		},
		{
			Id:        "1001",
			Name:      "Darth Vader",
			Friends:   []string{"1004"},
			AppearsIn: allEpisodes,
			Height:    2.02,
			Mass:      136,
			Starships: []string{"3002"},
		},
		{
			Id:        "1002",
			Name:      "Han Solo",
			Friends:   []string{"1000", "1003", "2001"},
			AppearsIn: allEpisodes,
			Height:    1.8,
			Mass:      80,
			Starships: []string{"3000", "3003"},
		},
		{
			Id:        "1003",
			Name:      "Leia Organa",
			Friends:   []string{"1000", "1002", "2000", "2001"},
			AppearsIn: allEpisodes,
			Height:    1.5,
			Mass:      49,
		},
		{
			Id:        "1004",
			Name:      "Wilhuff Tarkin",
			Friends:   []string{"1001"},
			AppearsIn: []model.Episode{model.EpisodeNewHope},
			Height:    1.8,
		},
	}
}

func seedDroids() []*model.Droid {
	return []*model.Droid{
		{
			Id:              "2000",
			Name:            "C-3PO",
			Friends:         []string{"1000", "1002", "1003", "2001"},
			AppearsIn:       allEpisodes,
			PrimaryFunction: "Protocol",
		},
		{
			Id:              "2001",
			Name:            "R2-D2",
			Friends:         []string{"1000", "1002", "1003"},
			AppearsIn:       allEpisodes,
			PrimaryFunction: "Astromech",
		},
	}
}

func seedStarships() []*model.Starship {
	return []*model.Starship{
		{Id: "3000", Name: "Millennium Falcon", Length: 34.37},
		{Id: "3001", Name: "X-Wing", Length: 12.5},
		{Id: "3002", Name: "TIE Advanced x1", Length: 9.2},
		{Id: "3003", Name: "Imperial shuttle", Length: 20},
	}
}
