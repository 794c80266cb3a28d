// Copyright 2026 The JReleaser Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

type CommitAuthor interface {
	Name() string
	Email() string
}

type Prerelease interface {
	Enabled() bool
	Pattern() string
}

type Update interface {
	Enabled() bool
	Sections() List[string]
}

type Changelog interface {
	Enabled() bool
	External() string
	Formatted() string
	Content() string
	ContentTemplate() string
	Links() bool
}

// GitService is a git hosting service releases are published to, e.g. GitHub.
type GitService interface {
	Extra
	Timeouts
	ServiceName() string
	Host() string
	Owner() string
	Name() string
	Username() string
	Token() string
	TagName() string
	PreviousTagName() string
	ReleaseName() string
	Branch() string
	Draft() bool
	Overwrite() bool
	SkipTag() bool
	SkipRelease() bool
	Sign() bool
	RepoURL() string
	RepoCloneURL() string
	CommitURL() string
	DownloadURL() string
	ReleaseNotesURL() string
	LatestReleaseURL() string
	IssueTrackerURL() string
	APIEndpoint() string
	CommitAuthor() CommitAuthor
	Prerelease() Prerelease
	Update() Update
	Changelog() Changelog
}

// Release holds the release configuration.
// GitService returns nil if no service is configured.
type Release interface {
	GitService() GitService
}

type Repository interface {
	Activatable
	Owner() string
	Name() string
	TagName() string
	Branch() string
	Username() string
	Token() string
}

// Packager is the common interface of all packagers.
type Packager interface {
	Activatable
	Extra
	Type() string
	ContinueOnError() bool
	CommitAuthor() CommitAuthor
}

type Brew interface {
	Packager
	FormulaName() string
	MultiPlatform() bool
	Dependencies() Map[string, string]
	Tap() Repository
}

type Scoop interface {
	Packager
	PackageName() string
	CheckverURL() string
	AutoupdateURL() string
	Bucket() Repository
}

type Packagers interface {
	Brew() Brew
	Scoop() Scoop
}
