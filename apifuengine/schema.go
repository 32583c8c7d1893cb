package apifuengine

import (
	"fmt"

	"github.com/ccbrown/api-fu/graphql"
	"github.com/ccbrown/api-fu/graphql/schema"

	"github.com/ccbrown/gqlbench/model"
	"github.com/ccbrown/gqlbench/store"
)

var episodeType = &graphql.EnumType{
	Name:        "Episode",
	Description: "The episodes in the Star Wars trilogy",
	Values: map[string]*schema.EnumValueDefinition{
		"NEWHOPE": {
			Description: "Star Wars Episode IV: A New Hope, released in 1977.",
			Value:       model.EpisodeNewHope,
		},
		"EMPIRE": {
			Description: "Star Wars Episode V: The Empire Strikes Back, released in 1980.",
			Value:       model.EpisodeEmpire,
		},
		"JEDI": {
			Description: "Star Wars Episode VI: Return of the Jedi, released in 1983.",
			Value:       model.EpisodeJedi,
		},
	},
}

var lengthUnitType = &graphql.EnumType{
	Name:        "LengthUnit",
	Description: "Units of height",
	Values: map[string]*schema.EnumValueDefinition{
		"METER": {
			Description: "The standard unit around the world",
			Value:       model.LengthUnitMeter,
		},
		"FOOT": {
			Description: "Primarily used in the United States",
			Value:       model.LengthUnitFoot,
		},
	},
}

var characterInterface = &graphql.InterfaceType{
	Name:        "Character",
	Description: "A character from the Star Wars universe",
}

var humanType = &graphql.ObjectType{
	Name:                  "Human",
	Description:           "A humanoid creature from the Star Wars universe",
	ImplementedInterfaces: []*graphql.InterfaceType{characterInterface},
	IsTypeOf: func(v interface{}) bool {
		_, ok := v.(*model.Human)
		return ok
	},
}

var droidType = &graphql.ObjectType{
	Name:                  "Droid",
	Description:           "An autonomous mechanical character in the Star Wars universe",
	ImplementedInterfaces: []*graphql.InterfaceType{characterInterface},
	IsTypeOf: func(v interface{}) bool {
		_, ok := v.(*model.Droid)
		return ok
	},
}

var starshipType = &graphql.ObjectType{
	Name: "Starship",
	IsTypeOf: func(v interface{}) bool {
		_, ok := v.(*model.Starship)
		return ok
	},
	Fields: map[string]*graphql.FieldDefinition{
		"id":   nonNull(graphql.IDType, "Id"),
		"name": nonNull(graphql.StringType, "Name"),
		"length": {
			Description: "Length of the starship, along the longest axis",
			Type:        graphql.NewNonNullType(graphql.FloatType),
			Arguments:   lengthUnitArguments(),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return store.ConvertLength(ctx.Object.(*model.Starship).Length, lengthUnit(ctx)), nil
			},
		},
	},
}

var reviewType = &graphql.ObjectType{
	Name:        "Review",
	Description: "Represents a review for a movie",
	Fields: map[string]*graphql.FieldDefinition{
		"stars":      nonNull(graphql.IntType, "Stars"),
		"commentary": nonEmptyString("Commentary"),
	},
}

var pageInfoType = &graphql.ObjectType{
	Name: "PageInfo",
	Fields: map[string]*graphql.FieldDefinition{
		"startCursor": {
			Type: graphql.IDType,
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return stringOrNil(ctx.Object.(*store.FriendsPage).StartCursor()), nil
			},
		},
		"endCursor": {
			Type: graphql.IDType,
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return stringOrNil(ctx.Object.(*store.FriendsPage).EndCursor()), nil
			},
		},
		"hasNextPage": {
			Type: graphql.NewNonNullType(graphql.BooleanType),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return ctx.Object.(*store.FriendsPage).HasNextPage(), nil
			},
		},
	},
}

// friendsEdge is the object behind a FriendsEdge.
type friendsEdge struct {
	Index    int
	FriendId string
}

var friendsEdgeType = &graphql.ObjectType{
	Name:        "FriendsEdge",
	Description: "An edge object for a character's friends",
}

var friendsConnectionType = &graphql.ObjectType{
	Name:        "FriendsConnection",
	Description: "A connection object for a character's friends",
}

var searchResultType = &graphql.UnionType{
	Name:        "SearchResult",
	MemberTypes: []*graphql.ObjectType{humanType, droidType, starshipType},
}

func lengthUnitArguments() map[string]*graphql.InputValueDefinition {
	return map[string]*graphql.InputValueDefinition{
		"unit": {
			Type:         lengthUnitType,
			DefaultValue: model.LengthUnitMeter,
		},
	}
}

func lengthUnit(ctx graphql.FieldContext) model.LengthUnit {
	if unit, ok := ctx.Arguments["unit"].(model.LengthUnit); ok {
		return unit
	}
	return model.LengthUnitMeter
}

func episode(ctx graphql.FieldContext) model.Episode {
	if ep, ok := ctx.Arguments["episode"].(model.Episode); ok {
		return ep
	}
	return model.EpisodeNewHope
}

// idArgument accepts both string and integer literals, which the ID type coerces differently.
func idArgument(ctx graphql.FieldContext) string {
	switch id := ctx.Arguments["id"].(type) {
	case string:
		return id
	case int:
		return fmt.Sprint(id)
	}
	return ""
}

func idArguments() map[string]*graphql.InputValueDefinition {
	return map[string]*graphql.InputValueDefinition{
		"id": {
			Type: graphql.NewNonNullType(graphql.IDType),
		},
	}
}

func friendsConnectionArguments() map[string]*graphql.InputValueDefinition {
	return map[string]*graphql.InputValueDefinition{
		"first": {
			Type: graphql.IntType,
		},
		"after": {
			Type: graphql.IDType,
		},
	}
}

// characterFields returns the fields shared by every Character implementation.
func characterFields() map[string]*graphql.FieldDefinition {
	return map[string]*graphql.FieldDefinition{
		"id": {
			Type: graphql.NewNonNullType(graphql.IDType),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return ctx.Object.(model.Character).CharacterId(), nil
			},
		},
		"name": {
			Type: graphql.NewNonNullType(graphql.StringType),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return ctx.Object.(model.Character).CharacterName(), nil
			},
		},
		"friends": {
			Type: graphql.NewListType(characterInterface),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return ctxServices(ctx.Context).Characters.Characters(ctx.Object.(model.Character).FriendIds()...), nil
			},
		},
		"friendsConnection": {
			Type:      graphql.NewNonNullType(friendsConnectionType),
			Arguments: friendsConnectionArguments(),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				var first *int
				if n, ok := ctx.Arguments["first"].(int); ok {
					first = &n
				}
				var after *string
				if s, ok := ctx.Arguments["after"].(string); ok {
					after = &s
				}
				return store.NewFriendsPage(ctx.Object.(model.Character).FriendIds(), first, after)
			},
		},
		"appearsIn": {
			Type: graphql.NewNonNullType(graphql.NewListType(graphql.NewNonNullType(episodeType))),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return ctx.Object.(model.Character).Episodes(), nil
			},
		},
	}
}

func init() {
	characterInterface.Fields = characterFields()

	humanType.Fields = characterFields()
	humanType.Fields["height"] = &graphql.FieldDefinition{
		Description: "Height in the preferred unit, default is meters",
		Type:        graphql.NewNonNullType(graphql.FloatType),
		Arguments:   lengthUnitArguments(),
		Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
			return store.ConvertLength(ctx.Object.(*model.Human).Height, lengthUnit(ctx)), nil
		},
	}
	humanType.Fields["mass"] = &graphql.FieldDefinition{
		Description: "Mass in kilograms, or null if unknown",
		Type:        graphql.FloatType,
		Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
			if mass := ctx.Object.(*model.Human).Mass; mass != 0 {
				return mass, nil
			}
			return nil, nil
		},
	}
	humanType.Fields["starships"] = &graphql.FieldDefinition{
		Type: graphql.NewListType(starshipType),
		Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
			return ctxServices(ctx.Context).Characters.Starships(ctx.Object.(*model.Human).Starships...), nil
		},
	}

	droidType.Fields = characterFields()
	droidType.Fields["primaryFunction"] = nonEmptyString("PrimaryFunction")

	friendsEdgeType.Fields = map[string]*graphql.FieldDefinition{
		"cursor": {
			Type: graphql.NewNonNullType(graphql.IDType),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return store.EncodeCursor(ctx.Object.(friendsEdge).Index), nil
			},
		},
		"node": {
			Type: characterInterface,
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				if c := ctxServices(ctx.Context).Characters.Character(ctx.Object.(friendsEdge).FriendId); c != nil {
					return c, nil
				}
				return nil, nil
			},
		},
	}

	friendsConnectionType.Fields = map[string]*graphql.FieldDefinition{
		"totalCount": {
			Type: graphql.NewNonNullType(graphql.IntType),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return ctx.Object.(*store.FriendsPage).TotalCount(), nil
			},
		},
		"edges": {
			Type: graphql.NewListType(friendsEdgeType),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				page := ctx.Object.(*store.FriendsPage)
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
		"friends": {
			Type: graphql.NewListType(characterInterface),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return ctxServices(ctx.Context).Characters.Characters(ctx.Object.(*store.FriendsPage).PageIds()...), nil
			},
		},
		"pageInfo": {
			Type: graphql.NewNonNullType(pageInfoType),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return ctx.Object, nil
			},
		},
	}
}

var queryType = &graphql.ObjectType{
	Name:        "Query",
	Description: "The query type, represents all of the entry points into our object graph",
	Fields: map[string]*graphql.FieldDefinition{
		"hero": {
			Type: characterInterface,
			Arguments: map[string]*graphql.InputValueDefinition{
				"episode": {
					Type:         episodeType,
					DefaultValue: model.EpisodeNewHope,
				},
			},
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				return ctxServices(ctx.Context).Characters.Hero(episode(ctx)), nil
			},
		},
		"reviews": {
			Type: graphql.NewNonNullType(graphql.NewListType(reviewType)),
			Arguments: map[string]*graphql.InputValueDefinition{
				"episode": {
					Type: graphql.NewNonNullType(episodeType),
				},
			},
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				reviews := ctxServices(ctx.Context).Reviews.Reviews(episode(ctx))
				if reviews == nil {
					reviews = []*model.Review{}
				}
				return reviews, nil
			},
		},
		"search": {
			Type: graphql.NewNonNullType(graphql.NewListType(searchResultType)),
			Arguments: map[string]*graphql.InputValueDefinition{
				"text": {
					Type: graphql.NewNonNullType(graphql.StringType),
				},
			},
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				results := ctxServices(ctx.Context).Characters.Search(ctx.Arguments["text"].(string))
				if results == nil {
					results = []interface{}{}
				}
				return results, nil
			},
		},
		"character": {
			Type:      characterInterface,
			Arguments: idArguments(),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				if c := ctxServices(ctx.Context).Characters.Character(idArgument(ctx)); c != nil {
					return c, nil
				}
				return nil, nil
			},
		},
		"droid": {
			Type:      droidType,
			Arguments: idArguments(),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				if d := ctxServices(ctx.Context).Characters.Droid(idArgument(ctx)); d != nil {
					return d, nil
				}
				return nil, nil
			},
		},
		"human": {
			Type:      humanType,
			Arguments: idArguments(),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				if h := ctxServices(ctx.Context).Characters.Human(idArgument(ctx)); h != nil {
					return h, nil
				}
				return nil, nil
			},
		},
		"starship": {
			Type:      starshipType,
			Arguments: idArguments(),
			Resolve: func(ctx graphql.FieldContext) (interface{}, error) {
				if s := ctxServices(ctx.Context).Characters.Starship(idArgument(ctx)); s != nil {
					return s, nil
				}
				return nil, nil
			},
		},
	},
}

func schemaDefinition() *graphql.SchemaDefinition {
	return &graphql.SchemaDefinition{
		Query: queryType,
		Directives: map[string]*graphql.DirectiveDefinition{
			"include": graphql.IncludeDirective,
			"skip":    graphql.SkipDirective,
		},
	}
}
