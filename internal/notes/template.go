package notes

// defaultTemplate is used when no template file exists for a release type.
// Placeholders match the files under templates/release-notes so both render
// through the same expansion.
const defaultTemplate = `## 🚀 v{version} - {release_type} Release

### 📋 Release Information

• Type: {release_description}
• Previous Version: {previous_version}

### ✨ What's New

{commit_summary}

### 🔧 Improvements

•

### 🐛 Bug Fixes

•

### 📚 Documentation

•

--------

Deployment Status: 🟡 Pending (will be updated automatically during release)
`
