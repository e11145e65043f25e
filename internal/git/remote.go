package git

import "strings"

// RemoteInfo represents one configured remote with its URLs.
type RemoteInfo struct {
	Name     string
	FetchURL string
	PushURL  string
}

// ParseRemotes parses `git remote -v` output.
//
// Git prints up to two lines per remote ("name url (fetch)" and
// "name url (push)"); lines are grouped by remote name and the URLs
// merged. A missing push URL defaults to the fetch URL. Empty output
// yields an empty slice.
func ParseRemotes(out string) []RemoteInfo {
	byName := make(map[string]*RemoteInfo)
	var order []string

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name, url := fields[0], fields[1]

		remote, seen := byName[name]
		if !seen {
			remote = &RemoteInfo{Name: name}
			byName[name] = remote
			order = append(order, name)
		}

		switch {
		case len(fields) >= 3 && fields[2] == "(push)":
			remote.PushURL = url
		default:
			remote.FetchURL = url
		}
	}

	remotes := make([]RemoteInfo, 0, len(order))
	for _, name := range order {
		remote := byName[name]
		if remote.PushURL == "" {
			remote.PushURL = remote.FetchURL
		}
		remotes = append(remotes, *remote)
	}
	return remotes
}
