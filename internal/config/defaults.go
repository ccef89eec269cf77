package config

const (
	defaultSiteTitle       = "My Music Portfolio"
	defaultSiteDescription = "A collection of my music tracks"
	defaultSiteAuthor      = "Artist"
	defaultGitHubUser      = "yourusername"
	defaultTracksDir       = "tracks"
	defaultOutputDir       = "docs"
	defaultTemplatesDir    = "templates"
	defaultAssetsDir       = "assets"
	defaultRegion          = "us-east-1"
	defaultBitrate         = 192
	defaultQuality         = 2
	defaultEncodeTimeout   = 300
	defaultLogFormat       = ""
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Site: Site{
			Title:       defaultSiteTitle,
			Description: defaultSiteDescription,
			Author:      defaultSiteAuthor,
			GitHubUser:  defaultGitHubUser,
		},
		Paths: Paths{
			TracksDir:    defaultTracksDir,
			OutputDir:    defaultOutputDir,
			TemplatesDir: defaultTemplatesDir,
			AssetsDir:    defaultAssetsDir,
		},
		Storage: Storage{
			Region: defaultRegion,
		},
		Encoder: Encoder{
			Bitrate:        defaultBitrate,
			Quality:        defaultQuality,
			TimeoutSeconds: defaultEncodeTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
