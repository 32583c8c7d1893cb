// Package queries holds the fixed query fixtures every benchmark case executes.
package queries

// ThreeFields selects three fields of a single object.
const ThreeFields = `{
	hero(episode: EMPIRE) {
		id
		name
		appearsIn
	}
}`

// SmallQuery selects a single character through a fragment with type conditions.
const SmallQuery = `query SmallQuery {
	hero(episode: EMPIRE) {
		...CharacterFields
	}
}

fragment CharacterFields on Character {
	id
	name
	... on Human {
		height
		mass
	}
	... on Droid {
		primaryFunction
	}
}`

const mediumSelections = `
	empireHero: hero(episode: EMPIRE) {
		...HeroDetails
	}
	jediHero: hero(episode: JEDI) {
		...HeroDetails
	}
	human(id: "1002") {
		...HumanDetails
	}
	droid(id: "2000") {
		name
		primaryFunction
	}
	reviews(episode: JEDI) {
		stars
		commentary
	}
	search(text: "an") {
		__typename
		... on Human {
			name
		}
		... on Droid {
			name
		}
		... on Starship {
			name
			length(unit: FOOT)
		}
	}
`

const mediumFragments = `
fragment HeroDetails on Character {
	id
	name
	appearsIn
	friends {
		name
		... on Droid {
			primaryFunction
		}
		... on Human {
			height(unit: FOOT)
		}
	}
	friendsConnection(first: 2) {
		totalCount
		edges {
			cursor
			node {
				name
			}
		}
		pageInfo {
			startCursor
			endCursor
			hasNextPage
		}
	}
}

fragment HumanDetails on Human {
	id
	name
	height
	mass
	starships {
		name
		length
	}
}
`

// MediumQuery selects several root fields through nested fragments, aliases, and a union.
const MediumQuery = `query MediumQuery {` + mediumSelections + `}
` + mediumFragments

const schemaSelection = `
	__schema {
		queryType {
			name
		}
		mutationType {
			name
		}
		subscriptionType {
			name
		}
		types {
			...FullType
		}
		directives {
			name
			description
			locations
			args {
				...InputValue
			}
		}
	}
`

const introspectionFragments = `
fragment FullType on __Type {
	kind
	name
	description
	fields(includeDeprecated: true) {
		name
		description
		args {
			...InputValue
		}
		type {
			...TypeRef
		}
		isDeprecated
		deprecationReason
	}
	inputFields {
		...InputValue
	}
	interfaces {
		...TypeRef
	}
	enumValues(includeDeprecated: true) {
		name
		description
		isDeprecated
		deprecationReason
	}
	possibleTypes {
		...TypeRef
	}
}

fragment InputValue on __InputValue {
	name
	description
	type {
		...TypeRef
	}
	defaultValue
}

fragment TypeRef on __Type {
	kind
	name
	ofType {
		kind
		name
		ofType {
			kind
			name
			ofType {
				kind
				name
				ofType {
					kind
					name
					ofType {
						kind
						name
						ofType {
							kind
							name
							ofType {
								kind
								name
							}
						}
					}
				}
			}
		}
	}
}
`

// Introspection is the full introspection query used by GraphQL tooling.
const Introspection = `query IntrospectionQuery {` + schemaSelection + `}
` + introspectionFragments

// MediumPlusIntrospection performs the medium query and the full introspection in one operation.
const MediumPlusIntrospection = `query MediumPlusIntrospection {` + mediumSelections + schemaSelection + `}
` + mediumFragments + introspectionFragments

// Fixture is a named query.
type Fixture struct {
	Name  string
	Query string

	// Introspects is true if the query selects __schema. Engines describe their schemas
	// differently, so such results aren't comparable across engines.
	Introspects bool
}

var (
	ThreeFieldsFixture             = Fixture{Name: "ThreeFields", Query: ThreeFields}
	SmallQueryFixture              = Fixture{Name: "SmallQueryWithFragments", Query: SmallQuery}
	MediumQueryFixture             = Fixture{Name: "MediumQueryWithFragments", Query: MediumQuery}
	IntrospectionFixture           = Fixture{Name: "Introspection", Query: Introspection, Introspects: true}
	MediumPlusIntrospectionFixture = Fixture{Name: "MediumQueryPlusIntrospection", Query: MediumPlusIntrospection, Introspects: true}
)

// All lists every fixture in benchmark order.
var All = []Fixture{
	ThreeFieldsFixture,
	SmallQueryFixture,
	MediumQueryFixture,
	IntrospectionFixture,
	MediumPlusIntrospectionFixture,
}
