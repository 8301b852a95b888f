package modrinth

import (
	"time"
)

// UserRole is the site-wide role of a user.
type UserRole string

// User roles.
const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleModerator UserRole = "moderator"
	UserRoleDeveloper UserRole = "developer"
)

// User represents a Modrinth user.
type User struct {
	ID        string    `json:"id"                  yaml:"id"`
	Username  string    `json:"username"            yaml:"username"`
	Name      *string   `json:"name,omitempty"      yaml:"name,omitempty"`
	Email     *string   `json:"email,omitempty"     yaml:"email,omitempty"`
	Bio       *string   `json:"bio,omitempty"       yaml:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url"          yaml:"avatar_url"`
	Created   time.Time `json:"created"             yaml:"created"`
	Role      UserRole  `json:"role"                yaml:"role"`
	GitHubID  *int64    `json:"github_id,omitempty" yaml:"github_id,omitempty"`
}

// ProjectType is the kind of content a project distributes.
type ProjectType string

// Project types.
const (
	ProjectTypeMod          ProjectType = "mod"
	ProjectTypeModpack      ProjectType = "modpack"
	ProjectTypeResourcePack ProjectType = "resourcepack"
	ProjectTypeShader       ProjectType = "shader"
)

// ProjectStatus is the moderation status of a project.
type ProjectStatus string

// Project statuses.
const (
	ProjectStatusApproved   ProjectStatus = "approved"
	ProjectStatusRejected   ProjectStatus = "rejected"
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusUnlisted   ProjectStatus = "unlisted"
	ProjectStatusArchived   ProjectStatus = "archived"
	ProjectStatusProcessing ProjectStatus = "processing"
	ProjectStatusUnknown    ProjectStatus = "unknown"
)

// SideSupport describes whether a project is needed on the client or
// server side.
type SideSupport string

// Side support values.
const (
	SideSupportRequired    SideSupport = "required"
	SideSupportOptional    SideSupport = "optional"
	SideSupportUnsupported SideSupport = "unsupported"
	SideSupportUnknown     SideSupport = "unknown"
)

// License identifies the license a project is distributed under.
type License struct {
	ID   string  `json:"id"            yaml:"id"`
	Name string  `json:"name"          yaml:"name"`
	URL  *string `json:"url,omitempty" yaml:"url,omitempty"`
}

// DonationLink is a donation platform entry on a project page.
type DonationLink struct {
	ID       string `json:"id"       yaml:"id"`
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url"      yaml:"url"`
}

// GalleryItem is an image in a project's gallery.
type GalleryItem struct {
	URL         string    `json:"url"                   yaml:"url"`
	Featured    bool      `json:"featured"              yaml:"featured"`
	Title       *string   `json:"title,omitempty"       yaml:"title,omitempty"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty"`
	Created     time.Time `json:"created"               yaml:"created"`
}

// Project represents a Modrinth project (a mod, modpack, resource pack,
// or shader).
type Project struct {
	ID           string         `json:"id"                    yaml:"id"`
	Slug         string         `json:"slug"                  yaml:"slug"`
	ProjectType  ProjectType    `json:"project_type"          yaml:"project_type"`
	Team         string         `json:"team"                  yaml:"team"`
	Title        string         `json:"title"                 yaml:"title"`
	Description  string         `json:"description"           yaml:"description"`
	Body         string         `json:"body"                  yaml:"body"`
	Published    time.Time      `json:"published"             yaml:"published"`
	Updated      time.Time      `json:"updated"               yaml:"updated"`
	Status       ProjectStatus  `json:"status"                yaml:"status"`
	License      License        `json:"license"               yaml:"license"`
	ClientSide   SideSupport    `json:"client_side"           yaml:"client_side"`
	ServerSide   SideSupport    `json:"server_side"           yaml:"server_side"`
	Downloads    int            `json:"downloads"             yaml:"downloads"`
	Followers    int            `json:"followers"             yaml:"followers"`
	Categories   []string       `json:"categories"            yaml:"categories"`
	Versions     []string       `json:"versions"              yaml:"versions"`
	IconURL      *string        `json:"icon_url,omitempty"    yaml:"icon_url,omitempty"`
	IssuesURL    *string        `json:"issues_url,omitempty"  yaml:"issues_url,omitempty"`
	SourceURL    *string        `json:"source_url,omitempty"  yaml:"source_url,omitempty"`
	WikiURL      *string        `json:"wiki_url,omitempty"    yaml:"wiki_url,omitempty"`
	DiscordURL   *string        `json:"discord_url,omitempty" yaml:"discord_url,omitempty"`
	DonationURLs []DonationLink `json:"donation_urls"         yaml:"donation_urls"`
	Gallery      []GalleryItem  `json:"gallery"               yaml:"gallery"`
}

// ProjectDependencies lists everything a project depends on: the
// dependency projects and the specific versions.
type ProjectDependencies struct {
	Projects []Project `json:"projects" yaml:"projects"`
	Versions []Version `json:"versions" yaml:"versions"`
}

// ProjectIdentifier carries the canonical ID a slug or ID resolves to.
type ProjectIdentifier struct {
	ID string `json:"id" yaml:"id"`
}

// VersionType is the release channel of a version.
type VersionType string

// Version types.
const (
	VersionTypeRelease VersionType = "release"
	VersionTypeBeta    VersionType = "beta"
	VersionTypeAlpha   VersionType = "alpha"
)

// DependencyType describes how a version relates to a dependency.
type DependencyType string

// Dependency types.
const (
	DependencyTypeRequired     DependencyType = "required"
	DependencyTypeOptional     DependencyType = "optional"
	DependencyTypeIncompatible DependencyType = "incompatible"
	DependencyTypeEmbedded     DependencyType = "embedded"
)

// FileHashes holds the digests published for a version file.
type FileHashes struct {
	SHA512 string `json:"sha512,omitempty" yaml:"sha512,omitempty"`
	SHA1   string `json:"sha1,omitempty"   yaml:"sha1,omitempty"`
}

// VersionFile is a single downloadable file of a version.
type VersionFile struct {
	Hashes   FileHashes `json:"hashes"   yaml:"hashes"`
	URL      string     `json:"url"      yaml:"url"`
	Filename string     `json:"filename" yaml:"filename"`
	Primary  bool       `json:"primary"  yaml:"primary"`
	Size     int        `json:"size"     yaml:"size"`
}

// VersionDependency is a dependency declared by a specific version.
type VersionDependency struct {
	VersionID      *string        `json:"version_id,omitempty" yaml:"version_id,omitempty"`
	ProjectID      *string        `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	FileName       *string        `json:"file_name,omitempty"  yaml:"file_name,omitempty"`
	DependencyType DependencyType `json:"dependency_type"      yaml:"dependency_type"`
}

// Version represents a specific release of a project.
type Version struct {
	ID            string              `json:"id"                  yaml:"id"`
	ProjectID     string              `json:"project_id"          yaml:"project_id"`
	AuthorID      string              `json:"author_id"           yaml:"author_id"`
	Name          string              `json:"name"                yaml:"name"`
	VersionNumber string              `json:"version_number"      yaml:"version_number"`
	Changelog     *string             `json:"changelog,omitempty" yaml:"changelog,omitempty"`
	DatePublished time.Time           `json:"date_published"      yaml:"date_published"`
	Downloads     int                 `json:"downloads"           yaml:"downloads"`
	VersionType   VersionType         `json:"version_type"        yaml:"version_type"`
	Featured      bool                `json:"featured"            yaml:"featured"`
	Files         []VersionFile       `json:"files"               yaml:"files"`
	Dependencies  []VersionDependency `json:"dependencies"        yaml:"dependencies"`
	GameVersions  []string            `json:"game_versions"       yaml:"game_versions"`
	Loaders       []string            `json:"loaders"             yaml:"loaders"`
}

// VersionFilter narrows a project's version listing. Nil slices and a
// nil Featured mean "no filter" and are omitted from the request
// entirely.
type VersionFilter struct {
	Loaders      []string
	GameVersions []string
	Featured     *bool
}

// NotificationAction is an action offered by a notification, with the
// route to invoke it.
type NotificationAction struct {
	Title       string   `json:"title"        yaml:"title"`
	ActionRoute []string `json:"action_route" yaml:"action_route"`
}

// Notification represents a notification a user has received.
type Notification struct {
	ID      string               `json:"id"      yaml:"id"`
	UserID  string               `json:"user_id" yaml:"user_id"`
	Type    *string              `json:"type,omitempty" yaml:"type,omitempty"`
	Title   string               `json:"title"   yaml:"title"`
	Text    string               `json:"text"    yaml:"text"`
	Link    string               `json:"link"    yaml:"link"`
	Read    bool                 `json:"read"    yaml:"read"`
	Created time.Time            `json:"created" yaml:"created"`
	Actions []NotificationAction `json:"actions" yaml:"actions"`
}

// ReportItemType is the kind of resource a report is filed against.
type ReportItemType string

// Report item types.
const (
	ReportItemTypeProject ReportItemType = "project"
	ReportItemTypeVersion ReportItemType = "version"
	ReportItemTypeUser    ReportItemType = "user"
)

// ReportSubmission is the payload for filing a report with the
// moderators.
type ReportSubmission struct {
	ReportType string         `json:"report_type" yaml:"report_type"`
	ItemID     string         `json:"item_id"     yaml:"item_id"`
	ItemType   ReportItemType `json:"item_type"   yaml:"item_type"`
	Body       string         `json:"body"        yaml:"body"`
}

// Report is a filed report as returned by the API.
type Report struct {
	ID         string         `json:"id,omitempty" yaml:"id,omitempty"`
	ReportType string         `json:"report_type"  yaml:"report_type"`
	ItemID     string         `json:"item_id"      yaml:"item_id"`
	ItemType   ReportItemType `json:"item_type"    yaml:"item_type"`
	Body       string         `json:"body"         yaml:"body"`
	Reporter   string         `json:"reporter"     yaml:"reporter"`
	Created    time.Time      `json:"created"      yaml:"created"`
}

// Category is a project category tag.
type Category struct {
	Icon        string      `json:"icon"         yaml:"icon"`
	Name        string      `json:"name"         yaml:"name"`
	ProjectType ProjectType `json:"project_type" yaml:"project_type"`
	Header      string      `json:"header"       yaml:"header"`
}

// Loader is a mod loader tag.
type Loader struct {
	Icon                  string   `json:"icon"                    yaml:"icon"`
	Name                  string   `json:"name"                    yaml:"name"`
	SupportedProjectTypes []string `json:"supported_project_types" yaml:"supported_project_types"`
}

// GameVersionTag is a game version known to the platform.
type GameVersionTag struct {
	Version     string    `json:"version"      yaml:"version"`
	VersionType string    `json:"version_type" yaml:"version_type"`
	Date        time.Time `json:"date"         yaml:"date"`
	Major       bool      `json:"major"        yaml:"major"`
}

// LicenseTag is a license known to the platform.
type LicenseTag struct {
	Short string `json:"short" yaml:"short"`
	Name  string `json:"name"  yaml:"name"`
}

// DonationPlatformTag is a donation platform known to the platform.
type DonationPlatformTag struct {
	Short string `json:"short" yaml:"short"`
	Name  string `json:"name"  yaml:"name"`
}
