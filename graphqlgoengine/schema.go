package graphqlgoengine

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/ccbrown/gqlbench/model"
	"github.com/ccbrown/gqlbench/store"
)

// schemaBuilder builds the schema around a set of services. Resolvers capture the services, so the
// schema is built once per service container.
type schemaBuilder struct {
	services *store.Services

	episode           *graphql.Enum
	lengthUnit        *graphql.Enum
	character         *graphql.Interface
	human             *graphql.Object
	droid             *graphql.Object
	starship          *graphql.Object
	review            *graphql.Object
	pageInfo          *graphql.Object
	friendsEdge       *graphql.Object
	friendsConnection *graphql.Object
	searchResult      *graphql.Union
}

type friendsEdge struct {
	Index    int
	FriendId string
}

func stringOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func lengthUnit(p graphql.ResolveParams) model.LengthUnit {
	if unit, ok := p.Args["unit"].(model.LengthUnit); ok {
		return unit
	}
	return model.LengthUnitMeter
}

func episode(p graphql.ResolveParams) model.Episode {
	if ep, ok := p.Args["episode"].(model.Episode); ok {
		return ep
	}
	return model.EpisodeNewHope
}

func idArgument(p graphql.ResolveParams) string {
	switch id := p.Args["id"].(type) {
	case string:
		return id
	case int:
		return fmt.Sprint(id)
	}
	return ""
}

func (b *schemaBuilder) resolveType(p graphql.ResolveTypeParams) *graphql.Object {
	switch p.Value.(type) {
	case *model.Human:
		return b.human
	case *model.Droid:
		return b.droid
	case *model.Starship:
		return b.starship
	}
	return nil
}

func (b *schemaBuilder) lengthUnitArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"unit": &graphql.ArgumentConfig{
			Type:         b.lengthUnit,
			DefaultValue: model.LengthUnitMeter,
		},
	}
}

func idArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{
			Type: graphql.NewNonNull(graphql.ID),
		},
	}
}

func (b *schemaBuilder) characterFields() graphql.Fields {
	return graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Character).CharacterId(), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Character).CharacterName(), nil
			},
		},
		"friends": &graphql.Field{
			Type: graphql.NewList(b.character),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return b.services.Characters.Characters(p.Source.(model.Character).FriendIds()...), nil
			},
		},
		"friendsConnection": &graphql.Field{
			Type: graphql.NewNonNull(b.friendsConnection),
			Args: graphql.FieldConfigArgument{
				"first": &graphql.ArgumentConfig{
					Type: graphql.Int,
				},
				"after": &graphql.ArgumentConfig{
					Type: graphql.ID,
				},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var first *int
				if n, ok := p.Args["first"].(int); ok {
					first = &n
				}
				var after *string
				if s, ok := p.Args["after"].(string); ok {
					after = &s
				}
				return store.NewFriendsPage(p.Source.(model.Character).FriendIds(), first, after)
			},
		},
		"appearsIn": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.episode))),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Character).Episodes(), nil
			},
		},
	}
}

func (b *schemaBuilder) build() (graphql.Schema, error) {
	b.episode = graphql.NewEnum(graphql.EnumConfig{
		Name:        "Episode",
		Description: "The episodes in the Star Wars trilogy",
		Values: graphql.EnumValueConfigMap{
			"NEWHOPE": &graphql.EnumValueConfig{
				Value:       model.EpisodeNewHope,
				Description: "Star Wars Episode IV: A New Hope, released in 1977.",
			},
			"EMPIRE": &graphql.EnumValueConfig{
				Value:       model.EpisodeEmpire,
				Description: "Star Wars Episode V: The Empire Strikes Back, released in 1980.",
			},
			"JEDI": &graphql.EnumValueConfig{
				Value:       model.EpisodeJedi,
				Description: "Star Wars Episode VI: Return of the Jedi, released in 1983.",
			},
		},
	})

	b.lengthUnit = graphql.NewEnum(graphql.EnumConfig{
		Name:        "LengthUnit",
		Description: "Units of height",
		Values: graphql.EnumValueConfigMap{
			"METER": &graphql.EnumValueConfig{
				Value:       model.LengthUnitMeter,
				Description: "The standard unit around the world",
			},
			"FOOT": &graphql.EnumValueConfig{
				Value:       model.LengthUnitFoot,
				Description: "Primarily used in the United States",
			},
		},
	})

	b.character = graphql.NewInterface(graphql.InterfaceConfig{
		Name:        "Character",
		Description: "A character from the Star Wars universe",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return b.characterFields()
		}),
		ResolveType: b.resolveType,
	})

	b.starship = graphql.NewObject(graphql.ObjectConfig{
		Name: "Starship",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Starship).Id, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Starship).Name, nil
				},
			},
			"length": &graphql.Field{
				Description: "Length of the starship, along the longest axis",
				Type:        graphql.NewNonNull(graphql.Float),
				Args:        b.lengthUnitArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.ConvertLength(p.Source.(*model.Starship).Length, lengthUnit(p)), nil
				},
			},
		},
	})

	b.human = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Human",
		Description: "A humanoid creature from the Star Wars universe",
		Interfaces:  []*graphql.Interface{b.character},
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			fields := b.characterFields()
			fields["height"] = &graphql.Field{
				Description: "Height in the preferred unit, default is meters",
				Type:        graphql.NewNonNull(graphql.Float),
				Args:        b.lengthUnitArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.ConvertLength(p.Source.(*model.Human).Height, lengthUnit(p)), nil
				},
			}
			fields["mass"] = &graphql.Field{
				Description: "Mass in kilograms, or null if unknown",
				Type:        graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if mass := p.Source.(*model.Human).Mass; mass != 0 {
						return mass, nil
					}
					return nil, nil
				},
			}
			fields["starships"] = &graphql.Field{
				Type: graphql.NewList(b.starship),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.services.Characters.Starships(p.Source.(*model.Human).Starships...), nil
				},
			}
			return fields
		}),
		IsTypeOf: func(p graphql.IsTypeOfParams) bool {
			_, ok := p.Value.(*model.Human)
			return ok
		},
	})

	b.droid = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Droid",
		Description: "An autonomous mechanical character in the Star Wars universe",
		Interfaces:  []*graphql.Interface{b.character},
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			fields := b.characterFields()
			fields["primaryFunction"] = &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if f := p.Source.(*model.Droid).PrimaryFunction; f != "" {
						return f, nil
					}
					return nil, nil
				},
			}
			return fields
		}),
		IsTypeOf: func(p graphql.IsTypeOfParams) bool {
			_, ok := p.Value.(*model.Droid)
			return ok
		},
	})

	b.review = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Review",
		Description: "Represents a review for a movie",
		Fields: graphql.Fields{
			"stars": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Review).Stars, nil
				},
			},
			"commentary": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if c := p.Source.(*model.Review).Commentary; c != "" {
						return c, nil
					}
					return nil, nil
				},
			},
		},
	})

	b.pageInfo = graphql.NewObject(graphql.ObjectConfig{
		Name: "PageInfo",
		Fields: graphql.Fields{
			"startCursor": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return stringOrNil(p.Source.(*store.FriendsPage).StartCursor()), nil
				},
			},
			"endCursor": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return stringOrNil(p.Source.(*store.FriendsPage).EndCursor()), nil
				},
			},
			"hasNextPage": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*store.FriendsPage).HasNextPage(), nil
				},
			},
		},
	})

	b.friendsEdge = graphql.NewObject(graphql.ObjectConfig{
		Name:        "FriendsEdge",
		Description: "An edge object for a character's friends",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"cursor": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return store.EncodeCursor(p.Source.(friendsEdge).Index), nil
					},
				},
				"node": &graphql.Field{
					Type: b.character,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						if c := b.services.Characters.Character(p.Source.(friendsEdge).FriendId); c != nil {
							return c, nil
						}
						return nil, nil
					},
				},
			}
		}),
	})

	b.friendsConnection = graphql.NewObject(graphql.ObjectConfig{
		Name:        "FriendsConnection",
		Description: "A connection object for a character's friends",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"totalCount": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*store.FriendsPage).TotalCount(), nil
					},
				},
				"edges": &graphql.Field{
					Type: graphql.NewList(b.friendsEdge),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						page := p.Source.(*store.FriendsPage)
						edges := make([]friendsEdge, 0, page.To-page.From)
						for _, i := range page.Edges() {
							edges = append(edges, friendsEdge{
								Index:    i,
								FriendId: page.Ids[i],
							})
						}
						return edges, nil
					},
				},
				"friends": &graphql.Field{
					Type: graphql.NewList(b.character),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return b.services.Characters.Characters(p.Source.(*store.FriendsPage).PageIds()...), nil
					},
				},
				"pageInfo": &graphql.Field{
					Type: graphql.NewNonNull(b.pageInfo),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source, nil
					},
				},
			}
		}),
	})

	b.searchResult = graphql.NewUnion(graphql.UnionConfig{
		Name:        "SearchResult",
		Types:       []*graphql.Object{b.human, b.droid, b.starship},
		ResolveType: b.resolveType,
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Query",
		Description: "The query type, represents all of the entry points into our object graph",
		Fields: graphql.Fields{
			"hero": &graphql.Field{
				Type: b.character,
				Args: graphql.FieldConfigArgument{
					"episode": &graphql.ArgumentConfig{
						Type:         b.episode,
						DefaultValue: model.EpisodeNewHope,
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.services.Characters.Hero(episode(p)), nil
				},
			},
			"reviews": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(b.review)),
				Args: graphql.FieldConfigArgument{
					"episode": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(b.episode),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					reviews := b.services.Reviews.Reviews(episode(p))
					if reviews == nil {
						reviews = []*model.Review{}
					}
					return reviews, nil
				},
			},
			"search": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(b.searchResult)),
				Args: graphql.FieldConfigArgument{
					"text": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					results := b.services.Characters.Search(p.Args["text"].(string))
					if results == nil {
						results = []interface{}{}
					}
					return results, nil
				},
			},
			"character": &graphql.Field{
				Type: b.character,
				Args: idArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if c := b.services.Characters.Character(idArgument(p)); c != nil {
						return c, nil
					}
					return nil, nil
				},
			},
			"droid": &graphql.Field{
				Type: b.droid,
				Args: idArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if d := b.services.Characters.Droid(idArgument(p)); d != nil {
						return d, nil
					}
					return nil, nil
				},
			},
			"human": &graphql.Field{
				Type: b.human,
				Args: idArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if h := b.services.Characters.Human(idArgument(p)); h != nil {
						return h, nil
					}
					return nil, nil
				},
			},
			"starship": &graphql.Field{
				Type: b.starship,
				Args: idArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s := b.services.Characters.Starship(idArgument(p)); s != nil {
						return s, nil
					}
					return nil, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}
