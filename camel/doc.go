// Package camel ranks five-card "camel card" hands.
//
// A hand is five card symbols from 23456789TJQKA plus a bid. Hands fall into
// one of seven categories (High Card up to Five of a Kind) and ties are broken
// by comparing card ranks in the order they were dealt, not sorted.
//
// # Rule Modes
//
// Under Standard rules J is a Jack. Under Jokers rules J is the weakest card
// but wild: jokers join whichever plain rank gives the strongest category.
//
// # Basic Usage
//
//	hands, err := camel.ParseHands(r, camel.Jokers)
//	if err != nil {
//	    return err
//	}
//	total, err := camel.TotalWinnings(hands)
//
// Or score both modes at once:
//
//	results, err := camel.SolveAll(input)
//	for _, res := range results {
//	    fmt.Println(res.Mode, res.Total)
//	}
package camel
