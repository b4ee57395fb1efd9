// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"sort"

	"github.com/alkautsarf/elecTrust-v2/models"
	"github.com/alkautsarf/elecTrust-v2/registry"
)

// ComputeStandings returns every candidate of the election ordered by vote
// count descending, ties broken by candidate index ascending, with standard
// competition ranking: tied counts share a rank and the following rank
// skips past them.
func ComputeStandings(reg *registry.Registry, electionIndex int) ([]models.CandidateStanding, error) {
	info, err := reg.GetElectionInfo(electionIndex)
	if err != nil {
		return nil, err
	}

	standings := make([]models.CandidateStanding, 0, info.TotalCandidates)
	for i := 1; i <= info.TotalCandidates; i++ {
		cand, err := reg.GetCandidate(electionIndex, i)
		if err != nil {
			return nil, err
		}
		standings = append(standings, models.CandidateStanding{
			CandidateIndex: i,
			Name:           cand.Name,
			VoteCount:      cand.VoteCount,
		})
	}

	sort.SliceStable(standings, func(a, b int) bool {
		if standings[a].VoteCount != standings[b].VoteCount {
			return standings[a].VoteCount > standings[b].VoteCount
		}
		return standings[a].CandidateIndex < standings[b].CandidateIndex
	})

	for i := range standings {
		if i > 0 && standings[i].VoteCount == standings[i-1].VoteCount {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}

	return standings, nil
}
