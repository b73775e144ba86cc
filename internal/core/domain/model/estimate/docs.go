// Package estimate holds the inputs and result of a job cost estimate.
//
// The formula:
//
//	total = 1000 + acres*550 + labour_count*450 + distance_km*fuel_price*0.6
//
// Totals and every breakdown component are rounded to two decimals.
package estimate
