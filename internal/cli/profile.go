package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
	"github.com/emreeozkull/biletbudur-cli/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	envPrefix   = "biletbudur"
	profileType = "yaml"

	profileDirPerm  os.FileMode = 0700
	profileFilePerm os.FileMode = 0600

	telemetryLogFile = "telemetry.log"
)

// set of supported CLI profile keys
const (
	keyAccessToken   = "access_token"
	keyRefreshToken  = "refresh_token"
	keyBaseURL       = "base_url"
	keyEventsURL     = "events_url"
	keyTelemetryMode = "telemetry_mode"
	keyEmail         = "email"
	keyFirstName     = "first_name"
	keyLastName      = "last_name"
)

var (
	errIncompleteTokens = errors.New("both an access and a refresh token are required")

	// credential store keys are persisted with the profile naming convention
	storeKeys = map[string]string{
		auth.KeyAccessToken:  keyAccessToken,
		auth.KeyRefreshToken: keyRefreshToken,
	}
)

// Profile is the CLI profile: the session credentials and settings
// stored in one section of the profile file.
//
// The profile is the credential store of the session. Every mutation is
// durable by the time it returns: the whole profile is written to a temporary
// file which then replaces the profile file, so a crash leaves either the
// previous or the next token pair on disk, never a mix of both
type Profile struct {
	Name string

	baseURL       string
	eventsURL     string
	telemetryMode telemetry.Mode

	dir string
	fs  afero.Fs
	env *viper.Viper

	mu sync.Mutex
	v  *viper.Viper
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile stored in the user's home directory
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := homeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", dirErr)
	}
	return NewProfileWithFs(name, dir, afero.NewOsFs()), nil
}

// NewProfileWithFs creates a new CLI profile stored in dir on the provided file system
func NewProfileWithFs(name, dir string, fs afero.Fs) *Profile {
	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	env.AutomaticEnv()

	return &Profile{
		Name: name,
		dir:  dir,
		fs:   fs,
		env:  env,
		v:    newViper(fs),
	}
}

func newViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType(profileType)
	return v
}

// Dir returns the directory holding the profile files
func (p *Profile) Dir() string {
	return p.dir
}

// Path returns the profile file path
func (p *Profile) Path() string {
	return filepath.Join(p.dir, p.Name+"."+profileType)
}

// TelemetryLogPath returns the path of the telemetry log kept next to the profile
func (p *Profile) TelemetryLogPath() string {
	return filepath.Join(p.dir, telemetryLogFile)
}

// Load loads the CLI profile, a missing profile file is not an error
func (p *Profile) Load() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := newViper(p.fs)
	v.SetConfigName(p.Name)
	v.AddConfigPath(p.dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to load CLI profile: %w", err)
		}
	}

	p.v = v
	return nil
}

// Get gets the credential stored at key
func (p *Profile) Get(key string) (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	value := p.get(storeKey(key))
	return value, value != "", nil
}

// Set stores the credential at key
func (p *Profile) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.update(map[string]string{storeKey(key): value})
}

// Delete removes the credential stored at key
func (p *Profile) Delete(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	name := storeKey(key)
	if p.get(name) == "" {
		return nil
	}
	return p.update(map[string]string{name: ""})
}

// SetTokens stores the token pair in a single write
func (p *Profile) SetTokens(tokens auth.TokenPair) error {
	if tokens.Access == "" || tokens.Refresh == "" {
		return errIncompleteTokens
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.update(tokenValues(tokens))
}

// ClearTokens removes the token pair and the identity cached with it in a single write
func (p *Profile) ClearTokens() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.update(clearedValues())
}

// SwapTokens replaces the token pair only if the stored refresh token is still expectedRefresh,
// a zero pair clears the session
func (p *Profile) SwapTokens(expectedRefresh string, tokens auth.TokenPair) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.get(keyRefreshToken) != expectedRefresh {
		return false, nil
	}

	if tokens == (auth.TokenPair{}) {
		return true, p.update(clearedValues())
	}
	if tokens.Access == "" || tokens.Refresh == "" {
		return false, errIncompleteTokens
	}
	return true, p.update(tokenValues(tokens))
}

// CachedIdentity returns the identity remembered at the last login
func (p *Profile) CachedIdentity() (auth.Identity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	identity := auth.Identity{
		Email:     p.get(keyEmail),
		FirstName: p.get(keyFirstName),
		LastName:  p.get(keyLastName),
	}
	return identity, identity != auth.Identity{}
}

// CacheIdentity remembers the identity of the current login
func (p *Profile) CacheIdentity(identity auth.Identity) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.update(map[string]string{
		keyEmail:     identity.Email,
		keyFirstName: identity.FirstName,
		keyLastName:  identity.LastName,
	})
}

// BaseURL returns the biletbudur base url: the --base-url flag wins over
// the BILETBUDUR_BASE_URL environment variable, which wins over the profile
func (p *Profile) BaseURL() string {
	if p.baseURL != "" {
		return p.baseURL
	}
	if baseURL := p.env.GetString(keyBaseURL); baseURL != "" {
		return baseURL
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if baseURL := p.get(keyBaseURL); baseURL != "" {
		return baseURL
	}
	return biletbudur.DefaultBaseURL
}

// SetBaseURL sets the base url used by the profile
func (p *Profile) SetBaseURL(baseURL string) {
	p.baseURL = baseURL
}

// EventsURL returns the url of the server hosting the public event feed,
// resolved like the base url from BILETBUDUR_EVENTS_URL and the profile
func (p *Profile) EventsURL() string {
	if p.eventsURL != "" {
		return p.eventsURL
	}
	if eventsURL := p.env.GetString(keyEventsURL); eventsURL != "" {
		return eventsURL
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if eventsURL := p.get(keyEventsURL); eventsURL != "" {
		return eventsURL
	}
	return biletbudur.DefaultEventsURL
}

// SetEventsURL sets the event feed url used by the profile
func (p *Profile) SetEventsURL(eventsURL string) {
	p.eventsURL = eventsURL
}

// TelemetryMode returns the telemetry mode, the --telemetry flag wins over the profile
func (p *Profile) TelemetryMode() telemetry.Mode {
	if p.telemetryMode != telemetry.ModeNil {
		return p.telemetryMode
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return telemetry.NewMode(p.get(keyTelemetryMode))
}

// ResolveFlags persists the settings provided by flags so later commands reuse them
func (p *Profile) ResolveFlags() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	values := map[string]string{}
	if p.baseURL != "" && p.baseURL != p.get(keyBaseURL) {
		values[keyBaseURL] = p.baseURL
	}
	if p.telemetryMode != telemetry.ModeNil && p.telemetryMode.String() != p.get(keyTelemetryMode) {
		values[keyTelemetryMode] = p.telemetryMode.String()
	}

	if len(values) == 0 {
		return nil
	}
	return p.update(values)
}

func (p *Profile) key(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

func (p *Profile) get(name string) string {
	return p.v.GetString(p.key(name))
}

// update applies values and saves the profile, restoring the previous values if the save fails.
// callers must hold p.mu
func (p *Profile) update(values map[string]string) error {
	prev := make(map[string]string, len(values))
	for name, value := range values {
		prev[name] = p.get(name)
		p.v.Set(p.key(name), value)
	}

	if err := p.save(); err != nil {
		for name, value := range prev {
			p.v.Set(p.key(name), value)
		}
		return err
	}
	return nil
}

func (p *Profile) save() error {
	data, err := yaml.Marshal(pruneSettings(p.v.AllSettings()))
	if err != nil {
		return fmt.Errorf("failed to save CLI profile: %w", err)
	}

	if err := p.fs.MkdirAll(p.dir, profileDirPerm); err != nil {
		return fmt.Errorf("failed to save CLI profile: %w", err)
	}

	if err := writeFileAtomic(p.fs, p.Path(), data); err != nil {
		return fmt.Errorf("failed to save CLI profile: %w", err)
	}
	return nil
}

func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	tmp, err := afero.TempFile(fs, filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return err
	}

	if err := fs.Chmod(tmpName, profileFilePerm); err != nil {
		fs.Remove(tmpName)
		return err
	}
	if err := fs.Rename(tmpName, path); err != nil {
		fs.Remove(tmpName)
		return err
	}
	return nil
}

// pruneSettings drops the blank values viper keeps for removed keys
func pruneSettings(settings map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(settings))
	for key, value := range settings {
		switch v := value.(type) {
		case string:
			if v == "" {
				continue
			}
		case map[string]interface{}:
			v = pruneSettings(v)
			if len(v) == 0 {
				continue
			}
			value = v
		}
		out[key] = value
	}
	return out
}

func storeKey(key string) string {
	if name, ok := storeKeys[key]; ok {
		return name
	}
	return key
}

func tokenValues(tokens auth.TokenPair) map[string]string {
	return map[string]string{
		keyAccessToken:  tokens.Access,
		keyRefreshToken: tokens.Refresh,
	}
}

func clearedValues() map[string]string {
	return map[string]string{
		keyAccessToken:  "",
		keyRefreshToken: "",
		keyEmail:        "",
		keyFirstName:    "",
		keyLastName:     "",
	}
}
