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

// Uploader is the common interface of all uploaders.
type Uploader interface {
	Activatable
	Extra
	Timeouts
	Name() string
	Type() string
	Artifacts() bool
	Files() bool
	Signatures() bool
	Checksums() bool
}

type HTTPUploader interface {
	Uploader
	UploadURL() string
	DownloadURL() string
	Method() string
	Authorization() string
	Username() string
	Password() string
	Headers() Map[string, string]
}

type S3Uploader interface {
	Uploader
	Region() string
	Bucket() string
	Path() string
	DownloadURL() string
	Endpoint() string
	AccessKeyID() string
	SecretKey() string
	SessionToken() string
	Headers() Map[string, string]
}

type ArtifactoryRepository interface {
	Activatable
	Path() string
	FileTypes() List[string]
}

type ArtifactoryUploader interface {
	Uploader
	Host() string
	Authorization() string
	Username() string
	Password() string
	Repositories() List[ArtifactoryRepository]
}

// Upload holds all uploaders.
type Upload interface {
	Activatable
	HTTP() Map[string, HTTPUploader]
	S3() Map[string, S3Uploader]
	Artifactory() Map[string, ArtifactoryUploader]
}

type Unpack interface {
	Enabled() bool
	SkipRootEntry() bool
}

type Asset interface {
	Input() string
	Output() string
	Unpack() Unpack
}

// Downloader is the common interface of all downloaders.
type Downloader interface {
	Activatable
	Extra
	Timeouts
	Name() string
	Type() string
	Assets() List[Asset]
}

type HTTPDownloader interface {
	Downloader
	Authorization() string
	Username() string
	Password() string
	Headers() Map[string, string]
}

type FTPDownloader interface {
	Downloader
	Host() string
	Port() int
	Username() string
	Password() string
}

// Download holds all downloaders.
type Download interface {
	Activatable
	HTTP() Map[string, HTTPDownloader]
	FTP() Map[string, FTPDownloader]
}
