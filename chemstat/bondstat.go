// Package chemstat obtains simple statistics for the bond lengths of a molecule.
package chemstat

import (
	"fmt"
	"math"
	"sort"

	chem "github.com/rmera/molgeo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BondLengths returns the lengths of the bonds in b, sorted in increasing order.
func BondLengths(b chem.Bonds) []float64 {
	ret := make([]float64, 0, len(b))
	for _, d := range b {
		ret = append(ret, d)
	}
	sort.Float64s(ret)
	return ret
}

// Summary contains descriptive statistics for a set of bond lengths.
// StdDev is the sample standard deviation, and it is zero for less than 2 bonds.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

func (S Summary) String() string {
	return fmt.Sprintf("%d bonds, length %.3f-%.3f, mean %.3f, std.dev. %.3f", S.N, S.Min, S.Max, S.Mean, S.StdDev)
}

// Summarize returns the statistics for the bond lengths in b. An empty
// bond list gives a zero Summary.
func Summarize(b chem.Bonds) Summary {
	lengths := BondLengths(b)
	if len(lengths) == 0 {
		return Summary{}
	}
	S := Summary{
		N:    len(lengths),
		Min:  floats.Min(lengths),
		Max:  floats.Max(lengths),
		Mean: stat.Mean(lengths, nil),
	}
	if S.N > 1 {
		S.StdDev = stat.StdDev(lengths, nil)
	}
	return S
}

// Dividers returns bins+1 evenly spaced dividers that cover all the given,
// sorted, lengths. It returns nil for empty lengths or bins < 1.
func Dividers(lengths []float64, bins int) []float64 {
	if len(lengths) == 0 || bins < 1 {
		return nil
	}
	lo := lengths[0]
	//the last divider is excluded by stat.Histogram
	hi := math.Nextafter(lengths[len(lengths)-1], math.Inf(1))
	return floats.Span(make([]float64, bins+1), lo, hi)
}

// Histogram counts the bond lengths in b that fall in each of the bins defined by
// dividers, which must be sorted and have at least 2 elements. Bin i goes from
// dividers[i] (included) to dividers[i+1] (excluded). Lengths out of
// the range covered by dividers are not counted.
func Histogram(b chem.Bonds, dividers []float64) ([]float64, error) {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("chemstat: at least 2 sorted dividers are needed for a histogram, got %v", dividers)
	}
	rawdata := BondLengths(b)
	//stat.Histogram just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(rawdata, dividers[len(dividers)-1])
	rawdata = rawdata[:maxi]
	mini := sort.SearchFloat64s(rawdata, dividers[0])
	rawdata = rawdata[mini:]
	return stat.Histogram(nil, dividers, rawdata, nil), nil
}
