// meta/meta.go
package meta

// GO_ROUTINES defines the number of games an experiment plays at once.
const GO_ROUTINES = 8

// GAMES defines the number of games played per match up.
const GAMES = 10

// MAX_TURNS bounds the length of a game. Every move fills one of the 92
// squares not occupied by a queen at the start, so no game can go longer.
const MAX_TURNS = 92

// DEPTH and BRANCHING_THRESHOLD are the default search settings.
const DEPTH = 5
const BRANCHING_THRESHOLD = 35
