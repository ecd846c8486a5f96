package parser

import (
	"math/big"
	"strconv"
)

func parseIntLexeme(s string) (int, error) {
	return strconv.Atoi(s)
}

func parseBigInt(s string) *big.Int {
	n := new(big.Int)
	n.SetString(s, 10)
	return n
}

func parseRealLexeme(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
