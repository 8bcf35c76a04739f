// Package fixture ports the ADD/REMOVE/QUERY scenario data used by
// the scenario tests into Go literals. The query radius/limit values
// are carried over for realism but are not asserted against directly;
// scenario tests check query results against a linear-scan oracle
// computed in Go, since the original values were generated against a
// differently shaped random tree.
package fixture

// ActionKind distinguishes an ADD from a REMOVE step.
type ActionKind int

const (
	ActionAdd ActionKind = iota
	ActionRemove
)

// Query is a GetNearest call to exercise after its enclosing Action.
type Query struct {
	Point  []float64
	Radius float64
	Limit  int
}

// Action is one ADD or REMOVE step followed by a sanity query.
type Action struct {
	Kind  ActionKind
	Point []float64
	Query Query
}

// Scenario is a full sequence of actions over a fixed dimensionality.
type Scenario struct {
	Name       string
	Dimensions int
	Actions    []Action
}

// F02R is a short 2-dimensional add/remove sequence.
var F02R = Scenario{
	Name:       "f02r",
	Dimensions: 2,
	Actions: []Action{
		{Kind: ActionAdd, Point: []float64{17, 96}, Query: Query{Point: []float64{85, 21}, Radius: 63.623841838829016, Limit: 4}},
		{Kind: ActionAdd, Point: []float64{60, 56}, Query: Query{Point: []float64{90, 54}, Radius: 60.29663611853935, Limit: 6}},
		{Kind: ActionRemove, Point: []float64{17, 96}, Query: Query{Point: []float64{64, 35}, Radius: 9.527956792264458, Limit: 4}},
		{Kind: ActionRemove, Point: []float64{60, 56}, Query: Query{Point: []float64{25, 73}, Radius: 6.3533672300254995, Limit: 5}},
	},
}

// F03R is a short 1-dimensional add/remove sequence.
var F03R = Scenario{
	Name:       "f03r",
	Dimensions: 1,
	Actions: []Action{
		{Kind: ActionAdd, Point: []float64{34}, Query: Query{Point: []float64{88}, Radius: 52.52227754725948, Limit: 1}},
		{Kind: ActionAdd, Point: []float64{44}, Query: Query{Point: []float64{90}, Radius: 70.69291307333901, Limit: 2}},
		{Kind: ActionAdd, Point: []float64{0}, Query: Query{Point: []float64{88}, Radius: 41.130939000327025, Limit: 1}},
		{Kind: ActionRemove, Point: []float64{0}, Query: Query{Point: []float64{3}, Radius: 65.29167245184956, Limit: 3}},
		{Kind: ActionRemove, Point: []float64{34}, Query: Query{Point: []float64{24}, Radius: 7.610060642307399, Limit: 3}},
		{Kind: ActionRemove, Point: []float64{44}, Query: Query{Point: []float64{69}, Radius: 18.384684628176522, Limit: 3}},
	},
}

// F17 is a longer 5-dimensional sequence covering two full
// add-then-remove cycles, exercising split and merge paths repeatedly.
var F17 = Scenario{
	Name:       "f17",
	Dimensions: 5,
	Actions: []Action{
		{Kind: ActionAdd, Point: []float64{46, 73, 39, 53, 98}, Query: Query{Point: []float64{99, 38, 78, 4, 66}, Radius: 70.40055338830851, Limit: 4}},
		{Kind: ActionAdd, Point: []float64{77, 3, 55, 34, 83}, Query: Query{Point: []float64{26, 64, 20, 70, 40}, Radius: 11.282583848976273, Limit: 6}},
		{Kind: ActionAdd, Point: []float64{37, 31, 89, 82, 50}, Query: Query{Point: []float64{35, 66, 18, 44, 29}, Radius: 33.192378200933454, Limit: 5}},
		{Kind: ActionAdd, Point: []float64{69, 44, 23, 21, 60}, Query: Query{Point: []float64{30, 16, 66, 76, 1}, Radius: 5.1398698373967555, Limit: 9}},
		{Kind: ActionAdd, Point: []float64{0, 60, 73, 96, 79}, Query: Query{Point: []float64{83, 1, 80, 63, 11}, Radius: 27.775971679307982, Limit: 3}},
		{Kind: ActionAdd, Point: []float64{47, 84, 45, 22, 61}, Query: Query{Point: []float64{46, 60, 27, 36, 93}, Radius: 11.462642147204711, Limit: 9}},
		{Kind: ActionAdd, Point: []float64{63, 90, 72, 3, 99}, Query: Query{Point: []float64{67, 59, 66, 78, 18}, Radius: 0.28351832256825915, Limit: 8}},
		{Kind: ActionAdd, Point: []float64{44, 53, 27, 7, 7}, Query: Query{Point: []float64{6, 35, 78, 13, 70}, Radius: 79.16031026380253, Limit: 13}},
		{Kind: ActionAdd, Point: []float64{49, 17, 29, 60, 62}, Query: Query{Point: []float64{2, 72, 65, 68, 2}, Radius: 24.818595712753595, Limit: 12}},
		{Kind: ActionAdd, Point: []float64{5, 95, 30, 47, 76}, Query: Query{Point: []float64{57, 20, 3, 50, 89}, Radius: 18.850418442888007, Limit: 3}},
		{Kind: ActionAdd, Point: []float64{79, 51, 34, 21, 36}, Query: Query{Point: []float64{32, 43, 33, 28, 78}, Radius: 57.02862103204859, Limit: 11}},
		{Kind: ActionAdd, Point: []float64{97, 69, 18, 56, 18}, Query: Query{Point: []float64{28, 19, 18, 99, 51}, Radius: 46.3357566660309, Limit: 17}},
		{Kind: ActionAdd, Point: []float64{24, 1, 40, 48, 50}, Query: Query{Point: []float64{96, 17, 64, 67, 35}, Radius: 42.15163271573009, Limit: 19}},
		{Kind: ActionAdd, Point: []float64{0, 14, 96, 74, 44}, Query: Query{Point: []float64{28, 59, 45, 20, 71}, Radius: 23.581562697753338, Limit: 17}},
		{Kind: ActionAdd, Point: []float64{26, 70, 96, 11, 46}, Query: Query{Point: []float64{89, 93, 96, 51, 61}, Radius: 27.0478377740727, Limit: 11}},
		{Kind: ActionAdd, Point: []float64{19, 92, 12, 76, 24}, Query: Query{Point: []float64{72, 14, 99, 18, 51}, Radius: 15.26841369394865, Limit: 4}},
		{Kind: ActionAdd, Point: []float64{86, 96, 35, 10, 97}, Query: Query{Point: []float64{72, 8, 93, 42, 58}, Radius: 8.118976016096386, Limit: 6}},
		{Kind: ActionRemove, Point: []float64{86, 96, 35, 10, 97}, Query: Query{Point: []float64{93, 91, 39, 84, 77}, Radius: 39.43076835747432, Limit: 17}},
		{Kind: ActionRemove, Point: []float64{49, 17, 29, 60, 62}, Query: Query{Point: []float64{18, 84, 89, 54, 42}, Radius: 1.5025567118741279, Limit: 10}},
		{Kind: ActionRemove, Point: []float64{37, 31, 89, 82, 50}, Query: Query{Point: []float64{3, 58, 47, 11, 92}, Radius: 13.546499934615293, Limit: 16}},
		{Kind: ActionRemove, Point: []float64{0, 14, 96, 74, 44}, Query: Query{Point: []float64{99, 96, 38, 47, 34}, Radius: 6.207022693058919, Limit: 4}},
		{Kind: ActionRemove, Point: []float64{46, 73, 39, 53, 98}, Query: Query{Point: []float64{29, 80, 60, 96, 84}, Radius: 9.069808693622061, Limit: 2}},
		{Kind: ActionRemove, Point: []float64{97, 69, 18, 56, 18}, Query: Query{Point: []float64{48, 95, 99, 30, 36}, Radius: 73.9790488553423, Limit: 6}},
		{Kind: ActionRemove, Point: []float64{5, 95, 30, 47, 76}, Query: Query{Point: []float64{38, 0, 83, 17, 33}, Radius: 5.70231328835531, Limit: 12}},
		{Kind: ActionRemove, Point: []float64{44, 53, 27, 7, 7}, Query: Query{Point: []float64{69, 85, 49, 34, 98}, Radius: 60.93846938871444, Limit: 1}},
		{Kind: ActionRemove, Point: []float64{69, 44, 23, 21, 60}, Query: Query{Point: []float64{21, 54, 43, 27, 78}, Radius: 61.481176435887164, Limit: 6}},
		{Kind: ActionRemove, Point: []float64{19, 92, 12, 76, 24}, Query: Query{Point: []float64{5, 24, 43, 31, 62}, Radius: 11.135663591060254, Limit: 2}},
		{Kind: ActionRemove, Point: []float64{47, 84, 45, 22, 61}, Query: Query{Point: []float64{36, 74, 93, 27, 5}, Radius: 60.028642217148516, Limit: 11}},
		{Kind: ActionRemove, Point: []float64{0, 60, 73, 96, 79}, Query: Query{Point: []float64{4, 29, 7, 83, 42}, Radius: 12.131059069429009, Limit: 7}},
		{Kind: ActionRemove, Point: []float64{26, 70, 96, 11, 46}, Query: Query{Point: []float64{41, 5, 39, 47, 4}, Radius: 24.919063627059526, Limit: 2}},
		{Kind: ActionRemove, Point: []float64{63, 90, 72, 3, 99}, Query: Query{Point: []float64{29, 57, 78, 4, 24}, Radius: 13.292973735293092, Limit: 2}},
		{Kind: ActionRemove, Point: []float64{77, 3, 55, 34, 83}, Query: Query{Point: []float64{19, 55, 86, 50, 64}, Radius: 28.19943174065223, Limit: 1}},
		{Kind: ActionRemove, Point: []float64{79, 51, 34, 21, 36}, Query: Query{Point: []float64{15, 12, 65, 83, 38}, Radius: 15.746909634743584, Limit: 1}},
		{Kind: ActionRemove, Point: []float64{24, 1, 40, 48, 50}, Query: Query{Point: []float64{43, 0, 84, 49, 100}, Radius: 28.904184311673724, Limit: 5}},
	},
}
