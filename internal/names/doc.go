// Package names generates the name renderings a people-search broker may
// display for one person, and splits broker name strings into parts.
//
// Permutations is intentionally generous: truncated and initialed forms such
// as "j smith" are produced for "john smith" so that ambiguous hits surface
// for confirmation instead of being dropped. Full-length coverage comes only
// from the base combinations; truncation always stops one rune short. Base
// returns those combinations alone and is the set a literal match uses.
//
// Two splitting rules live here and must stay distinct. SplitRecordName
// concatenates interior tokens ("Mary Ann Beth Lee" has middle "AnnBeth"),
// while SplitRelativeName joins them with a space and title-cases every part.
package names
