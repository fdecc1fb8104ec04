// Package cost projects the year-by-year cost of closing part of the national
// AHP gap under an investment plan.
//
// The annual hiring target is spread over categories by their share of the
// category gap sum, and each year accrues training, salary, infrastructure and
// retention cost. Currency on YearRecord is reported in crore (1e7 rupees)
// rounded to two decimals; the unrounded rupee amounts are kept in Raw.
package cost
