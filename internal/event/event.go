// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package event reads the pull request webhook payload the CI runner
// writes to GITHUB_EVENT_PATH. Only the handful of fields the labeler
// needs are decoded; the rest of the payload is ignored.
package event

import (
	"encoding/json"
	"fmt"
	"os"

	labelerrors "github.com/iahmedsabry/pr-size-label/internal/errors"
)

// Event actions that lead to labeling. Every other action is a no-op.
const (
	ActionOpened      = "opened"
	ActionSynchronize = "synchronize"
	ActionReopened    = "reopened"
)

// Event is the slice of a pull_request webhook payload the labeler
// reads.
type Event struct {
	Action      string       `json:"action"`
	PullRequest *PullRequest `json:"pull_request"`
}

// PullRequest carries the number and the base repository the label is
// posted to.
type PullRequest struct {
	Number int  `json:"number"`
	Base   Base `json:"base"`
}

// Base is the target side of the pull request.
type Base struct {
	Repo Repository `json:"repo"`
}

// Repository identifies the repository owning the pull request.
type Repository struct {
	Name  string `json:"name"`
	Owner Owner  `json:"owner"`
}

// Owner is the account owning the base repository.
type Owner struct {
	Login string `json:"login"`
}

// ReadFile loads and decodes the payload at path.
func ReadFile(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event payload %s: %w: %v", path, labelerrors.ErrBadEvent, err)
	}
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("decode event payload %s: %w: %v", path, labelerrors.ErrBadEvent, err)
	}
	return &ev, nil
}

// ShouldLabel reports whether the event action is one that changes the
// set of changed files and therefore warrants (re)labeling.
func (e *Event) ShouldLabel() bool {
	switch e.Action {
	case ActionOpened, ActionSynchronize, ActionReopened:
		return true
	}
	return false
}

// Ref extracts the owner, repository name and pull request number.
// Any missing piece invalidates the whole context: the payload either
// identifies a pull request completely or not at all.
func (e *Event) Ref() (owner, repo string, number int, err error) {
	if e.PullRequest != nil {
		owner = e.PullRequest.Base.Repo.Owner.Login
		repo = e.PullRequest.Base.Repo.Name
		number = e.PullRequest.Number
	}
	if owner == "" || repo == "" || number <= 0 {
		return "", "", 0, fmt.Errorf("invalid pull_request context in GITHUB_EVENT_PATH: %w", labelerrors.ErrBadEvent)
	}
	return owner, repo, number, nil
}
