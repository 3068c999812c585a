// Package hashing provides position hashing and duplicate detection for
// finished games.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x2545F4914F6CDD1D

type zobristTable struct {
	// pieces is indexed by colour, kind, rank and file.
	pieces      [2][chess.King + 1][8][8]uint64
	blackToMove uint64
}

var zobrist = newZobristTable()

func newZobristTable() *zobristTable {
	rng := rand.New(rand.NewSource(zobristSeed))
	t := &zobristTable{}
	for c := range t.pieces {
		for k := range t.pieces[c] {
			for r := range t.pieces[c][k] {
				for f := range t.pieces[c][k][r] {
					t.pieces[c][k][r][f] = rng.Uint64()
				}
			}
		}
	}
	t.blackToMove = rng.Uint64()
	return t
}

// PositionHash returns the Zobrist hash of the pieces on b with turn to
// move. Castling and en passant rights are not part of the key.
func PositionHash(b *engine.Board, turn chess.Colour) uint64 {
	var h uint64
	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		for _, p := range b.Pieces(colour) {
			sq := p.Square()
			h ^= zobrist.pieces[colour][p.Kind()][sq.Rank][sq.File]
		}
	}
	if turn == chess.Black {
		h ^= zobrist.blackToMove
	}
	return h
}

// WeakHash is a cheap additive hash of the pieces, independent of the
// Zobrist keys. Two positions that agree on both hashes are taken to be
// equal.
func WeakHash(b *engine.Board) uint32 {
	var h uint32
	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		for _, p := range b.Pieces(colour) {
			sq := p.Square()
			code := uint32(p.Kind())<<1 | uint32(colour)
			h += code * uint32(sq.Rank*8+sq.File+1) * 2654435761
		}
	}
	return h
}

// GameSignature identifies a finished game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash guards against Zobrist collisions
	WeakHash uint32
	// Plies is the number of half-moves played
	Plies int
}

// Signature computes the signature of g's current position.
func Signature(g *engine.Game) GameSignature {
	return GameSignature{
		Hash:     PositionHash(g.Board(), g.CurrentTurn()),
		WeakHash: WeakHash(g.Board()),
		Plies:    g.Plies(),
	}
}

// DuplicateDetector tracks final positions to spot repeated games.
// It is not safe for concurrent use.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// exactMatch also requires equal ply counts
	exactMatch bool
	// maxCapacity bounds the stored signatures (0 = unlimited)
	maxCapacity int

	unique         int
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]GameSignature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether g ends where an earlier game ended, and
// records it otherwise. Once the detector is full new games are still
// checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(g *engine.Game) bool {
	sig := Signature(g)

	for _, seen := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, seen) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.unique++
	}
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.exactMatch || a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of recorded games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.unique
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.unique >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.unique = 0
	d.duplicateCount = 0
}
