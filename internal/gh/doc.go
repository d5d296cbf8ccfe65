// Package gh fetches issues by shelling out to the GitHub CLI.
//
// snitch never talks to the network itself. A report run makes exactly one
// call of the form
//
//	gh issue list -L <limit> --state <state> --json number,title,labels,milestone,state,assignees,url [-R <repo>]
//
// and decodes the JSON array it prints. Authentication, host selection and
// API paging are left to gh.
//
// # Error Handling
//
// Failures are returned as *output.ExitError with ExitSystemError:
//   - gh missing from PATH
//   - gh exiting non-zero (its stderr becomes the message)
//   - output that is not an issue array
//
// Tests replace the gh binary with a Runner:
//
//	client := gh.NewClient(func(ctx context.Context, args ...string) (string, error) {
//	    return `[{"number": 1, "title": "Fix bug", "state": "OPEN"}]`, nil
//	}, logger)
package gh
