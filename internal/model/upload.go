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

package model

import (
	"github.com/jreleaser/jreleaser/internal/common/mapsh"
	"github.com/jreleaser/jreleaser/internal/model/active"
	"github.com/jreleaser/jreleaser/internal/model/httptypes"
	"github.com/jreleaser/jreleaser/pkg/api"
)

// Uploader and downloader type keys.
const (
	S3Name          = "s3"
	ArtifactoryName = "artifactory"
	FTPName         = "ftp"
)

// Uploader is implemented by all uploaders.
type Uploader interface {
	Activatable
	Named
	Type() string
	ConfigPath() string
	uploaderBase() *UploaderBase
}

// UploaderBase holds the fields shared by all uploaders.
type UploaderBase struct {
	NamedBase
	Activation
	Timeouts
	Artifacts       *bool           `json:"artifacts"`
	Files           *bool           `json:"files"`
	Signatures      *bool           `json:"signatures"`
	Checksums       *bool           `json:"checksums"`
	ExtraProperties ExtraProperties `json:"extra_properties"`
}

func (b *UploaderBase) uploaderBase() *UploaderBase {
	return b
}

// IsArtifacts reports whether release artifacts should be uploaded, default true.
func (b *UploaderBase) IsArtifacts() bool { return BoolOr(b.Artifacts, true) }

// IsFiles reports whether extra files should be uploaded, default true.
func (b *UploaderBase) IsFiles() bool { return BoolOr(b.Files, true) }

// IsSignatures reports whether signatures should be uploaded, default false.
func (b *UploaderBase) IsSignatures() bool { return BoolOr(b.Signatures, false) }

// IsChecksums reports whether checksums should be uploaded, default false.
func (b *UploaderBase) IsChecksums() bool { return BoolOr(b.Checksums, false) }

func uploadPath(typ, name string) string {
	return "upload." + typ + "." + name
}

// HTTPUploader uploads with a HTTP PUT or POST.
type HTTPUploader struct {
	UploaderBase
	UploadURL     string                  `json:"upload_url"`
	DownloadURL   string                  `json:"download_url"`
	Method        httptypes.Method        `json:"method"`
	Authorization httptypes.Authorization `json:"authorization"`
	Username      string                  `json:"username"`
	Password      string                  `json:"password" model:"secret"`
	Headers       map[string]string       `json:"headers" model:"bykey"`

	immutable api.HTTPUploader
}

// NewHTTPUploader creates a new HTTP uploader with the given name.
func NewHTTPUploader(name string) *HTTPUploader {
	u := &HTTPUploader{}
	u.Name = name
	return u
}

func (u *HTTPUploader) Type() string { return HTTPName }
func (u *HTTPUploader) ConfigPath() string { return uploadPath(HTTPName, u.Name) }

func (u *HTTPUploader) IsEnabled(rc RunContext) bool {
	return u.Activation.IsEnabled(rc, u.ConfigPath())
}

// Merge fills in the unset fields in u from src.
func (u *HTTPUploader) Merge(src *HTTPUploader) {
	Merge(u, src)
}

func (u *HTTPUploader) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, u, full)
}

// ResolvedUploadURL renders the upload URL with the given artifact properties added.
func (u *HTTPUploader) ResolvedUploadURL(rc RunContext, artifact map[string]any) (string, error) {
	return rc.Render(u.UploadURL, artifactProps(rc, HTTPName, &u.ExtraProperties, artifact))
}

// ResolvedDownloadURL renders the download URL with the given artifact properties added.
func (u *HTTPUploader) ResolvedDownloadURL(rc RunContext, artifact map[string]any) (string, error) {
	return rc.Render(u.DownloadURL, artifactProps(rc, HTTPName, &u.ExtraProperties, artifact))
}

func (u *HTTPUploader) AsImmutable() api.HTTPUploader {
	if u.immutable == nil {
		u.immutable = httpUploaderView{uploaderView: newUploaderView(&u.UploaderBase, HTTPName), u: u}
	}
	return u.immutable
}

// S3Uploader uploads to an AWS S3 compatible bucket.
type S3Uploader struct {
	UploaderBase
	Region       string            `json:"region"`
	Bucket       string            `json:"bucket"`
	Path         string            `json:"path"`
	DownloadURL  string            `json:"download_url"`
	Endpoint     string            `json:"endpoint"`
	AccessKeyID  string            `json:"access_key_id" model:"secret"`
	SecretKey    string            `json:"secret_key" model:"secret"`
	SessionToken string            `json:"session_token" model:"secret"`
	Headers      map[string]string `json:"headers" model:"bykey"`

	immutable api.S3Uploader
}

// NewS3Uploader creates a new S3 uploader with the given name.
func NewS3Uploader(name string) *S3Uploader {
	u := &S3Uploader{}
	u.Name = name
	return u
}

func (u *S3Uploader) Type() string { return S3Name }
func (u *S3Uploader) ConfigPath() string { return uploadPath(S3Name, u.Name) }

func (u *S3Uploader) IsEnabled(rc RunContext) bool {
	return u.Activation.IsEnabled(rc, u.ConfigPath())
}

// Merge fills in the unset fields in u from src.
func (u *S3Uploader) Merge(src *S3Uploader) {
	Merge(u, src)
}

func (u *S3Uploader) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, u, full)
}

// ResolvedPath renders the object path with the given artifact properties added.
// The default is {{ .projectName }}/{{ .tagName }}/{{ .artifactFile }}.
func (u *S3Uploader) ResolvedPath(rc RunContext, artifact map[string]any) (string, error) {
	p := u.Path
	if p == "" {
		p = "{{ .projectName }}/{{ .tagName }}/{{ .artifactFile }}"
	}
	return rc.Render(p, artifactProps(rc, S3Name, &u.ExtraProperties, artifact))
}

func (u *S3Uploader) AsImmutable() api.S3Uploader {
	if u.immutable == nil {
		u.immutable = s3UploaderView{uploaderView: newUploaderView(&u.UploaderBase, S3Name), u: u}
	}
	return u.immutable
}

// ArtifactoryRepository is a target repository for some file types.
type ArtifactoryRepository struct {
	Active    active.Active `json:"active"`
	Path      string        `json:"path"`
	FileTypes []string      `json:"file_types" model:"replace"`
}

// ArtifactoryUploader uploads to JFrog Artifactory repositories.
type ArtifactoryUploader struct {
	UploaderBase
	Host          string                  `json:"host"`
	Authorization httptypes.Authorization `json:"authorization"`
	Username      string                  `json:"username"`
	Password      string                  `json:"password" model:"secret"`
	Repositories  []ArtifactoryRepository `json:"repositories" model:"replace"`

	immutable api.ArtifactoryUploader
}

// NewArtifactoryUploader creates a new Artifactory uploader with the given name.
func NewArtifactoryUploader(name string) *ArtifactoryUploader {
	u := &ArtifactoryUploader{}
	u.Name = name
	return u
}

func (u *ArtifactoryUploader) Type() string { return ArtifactoryName }
func (u *ArtifactoryUploader) ConfigPath() string { return uploadPath(ArtifactoryName, u.Name) }

func (u *ArtifactoryUploader) IsEnabled(rc RunContext) bool {
	return u.Activation.IsEnabled(rc, u.ConfigPath())
}

// Merge fills in the unset fields in u from src.
func (u *ArtifactoryUploader) Merge(src *ArtifactoryUploader) {
	Merge(u, src)
}

func (u *ArtifactoryUploader) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, u, full)
}

func (u *ArtifactoryUploader) AsImmutable() api.ArtifactoryUploader {
	if u.immutable == nil {
		u.immutable = artifactoryUploaderView{uploaderView: newUploaderView(&u.UploaderBase, ArtifactoryName), u: u}
	}
	return u.immutable
}

func artifactProps(rc RunContext, prefix string, extra *ExtraProperties, artifact map[string]any) map[string]any {
	props := templateProps(rc, prefix, extra)
	for k, v := range artifact {
		props[k] = v
	}
	return props
}

// Upload holds all uploaders.
type Upload struct {
	Activation
	HTTP        Registry[*HTTPUploader]        `json:"http"`
	S3          Registry[*S3Uploader]          `json:"s3"`
	Artifactory Registry[*ArtifactoryUploader] `json:"artifactory"`

	immutable api.Upload
}

func (u *Upload) ConfigPath() string { return "upload" }

func (u *Upload) IsEnabled(rc RunContext) bool {
	return u.Activation.IsEnabled(rc, u.ConfigPath())
}

// FindUploader returns the uploader of the given type and name.
// Both are trimmed and matched ignoring case.
func (u *Upload) FindUploader(typ, name string) (Uploader, error) {
	switch normalizeName(typ) {
	case HTTPName:
		return findUploader(&u.HTTP, name)
	case S3Name:
		return findUploader(&u.S3, name)
	case ArtifactoryName:
		return findUploader(&u.Artifactory, name)
	case "":
		return nil, newConfigError(KeyBlankName, nil, "uploader type")
	default:
		return nil, newConfigError(KeyUnsupportedUploader, nil, typ)
	}
}

func findUploader[E Uploader](r *Registry[E], name string) (Uploader, error) {
	e, err := r.FindByName(name)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// All returns all uploaders in run order.
func (u *Upload) All() []Uploader {
	var all []Uploader
	for _, e := range u.HTTP.All() {
		all = append(all, e)
	}
	for _, e := range u.S3.All() {
		all = append(all, e)
	}
	for _, e := range u.Artifactory.All() {
		all = append(all, e)
	}
	return all
}

// EnabledUploaders returns the enabled uploaders in run order.
// None are enabled if Upload itself is not.
func (u *Upload) EnabledUploaders(rc RunContext) []Uploader {
	if !u.IsEnabled(rc) {
		return nil
	}
	var enabled []Uploader
	for _, e := range u.All() {
		if e.IsEnabled(rc) {
			enabled = append(enabled, e)
		}
	}
	return enabled
}

// Merge fills in the unset fields in u from src.
func (u *Upload) Merge(src *Upload) {
	Merge(u, src)
}

// Migrate replaces all legacy enabled flags with their active equivalent.
func (u *Upload) Migrate(rc RunContext) {
	u.Activation.Migrate(rc, u.ConfigPath())
	for _, e := range u.All() {
		e.uploaderBase().Migrate(rc, e.ConfigPath())
	}
}

func (u *Upload) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, u, full)
}

func (u *Upload) AsImmutable() api.Upload {
	if u.immutable == nil {
		u.immutable = uploadView{activatableView: activatableView{a: &u.Activation}, u: u}
	}
	return u.immutable
}

type uploadView struct {
	activatableView
	u *Upload
}

func (v uploadView) HTTP() api.Map[string, api.HTTPUploader] {
	return newRegistryView(&v.u.HTTP, func(e *HTTPUploader) api.HTTPUploader { return e.AsImmutable() })
}

func (v uploadView) S3() api.Map[string, api.S3Uploader] {
	return newRegistryView(&v.u.S3, func(e *S3Uploader) api.S3Uploader { return e.AsImmutable() })
}

func (v uploadView) Artifactory() api.Map[string, api.ArtifactoryUploader] {
	return newRegistryView(&v.u.Artifactory, func(e *ArtifactoryUploader) api.ArtifactoryUploader { return e.AsImmutable() })
}

type uploaderView struct {
	activatableView
	extraView
	timeoutsView
	b   *UploaderBase
	typ string
}

func newUploaderView(b *UploaderBase, typ string) uploaderView {
	return uploaderView{
		activatableView: activatableView{a: &b.Activation},
		extraView:       extraView{e: &b.ExtraProperties},
		timeoutsView:    timeoutsView{t: &b.Timeouts},
		b:               b,
		typ:             typ,
	}
}

func (v uploaderView) Name() string { return v.b.Name }
func (v uploaderView) Type() string { return v.typ }
func (v uploaderView) Artifacts() bool { return v.b.IsArtifacts() }
func (v uploaderView) Files() bool { return v.b.IsFiles() }
func (v uploaderView) Signatures() bool { return v.b.IsSignatures() }
func (v uploaderView) Checksums() bool { return v.b.IsChecksums() }

type httpUploaderView struct {
	uploaderView
	u *HTTPUploader
}

func (v httpUploaderView) UploadURL() string { return v.u.UploadURL }
func (v httpUploaderView) DownloadURL() string { return v.u.DownloadURL }
func (v httpUploaderView) Method() string { return v.u.Method.String() }
func (v httpUploaderView) Authorization() string { return v.u.Authorization.String() }
func (v httpUploaderView) Username() string { return v.u.Username }
func (v httpUploaderView) Password() string { return v.u.Password }

func (v httpUploaderView) Headers() api.Map[string, string] {
	return goMapView[string]{m: &v.u.Headers}
}

type s3UploaderView struct {
	uploaderView
	u *S3Uploader
}

func (v s3UploaderView) Region() string { return v.u.Region }
func (v s3UploaderView) Bucket() string { return v.u.Bucket }
func (v s3UploaderView) Path() string { return v.u.Path }
func (v s3UploaderView) DownloadURL() string { return v.u.DownloadURL }
func (v s3UploaderView) Endpoint() string { return v.u.Endpoint }
func (v s3UploaderView) AccessKeyID() string { return v.u.AccessKeyID }
func (v s3UploaderView) SecretKey() string { return v.u.SecretKey }
func (v s3UploaderView) SessionToken() string { return v.u.SessionToken }

func (v s3UploaderView) Headers() api.Map[string, string] {
	return goMapView[string]{m: &v.u.Headers}
}

type artifactoryUploaderView struct {
	uploaderView
	u *ArtifactoryUploader
}

func (v artifactoryUploaderView) Host() string { return v.u.Host }
func (v artifactoryUploaderView) Authorization() string { return v.u.Authorization.String() }
func (v artifactoryUploaderView) Username() string { return v.u.Username }
func (v artifactoryUploaderView) Password() string { return v.u.Password }

func (v artifactoryUploaderView) Repositories() api.List[api.ArtifactoryRepository] {
	return mappedListView[ArtifactoryRepository, api.ArtifactoryRepository]{
		s: &v.u.Repositories,
		f: func(r *ArtifactoryRepository) api.ArtifactoryRepository { return artifactoryRepositoryView{r: r} },
	}
}

type artifactoryRepositoryView struct {
	r *ArtifactoryRepository
}

func (v artifactoryRepositoryView) Active() string {
	if v.r.Active.IsZero() {
		return ""
	}
	return v.r.Active.String()
}

func (v artifactoryRepositoryView) Path() string { return v.r.Path }
func (v artifactoryRepositoryView) FileTypes() api.List[string] { return listView[string]{s: &v.r.FileTypes} }
