package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectPrepare_Defaults(t *testing.T) {
	p := Project{Title: "Portfolio", Description: "This site"}
	p.Prepare()

	assert.False(t, p.ID.IsZero())
	assert.Equal(t, ProjectStatusPublished, p.Status)
	assert.False(t, p.CreatedAt.IsZero())
	// nil slices become empty so list responses serialize [] not null
	assert.NotNil(t, p.Images)
	assert.NotNil(t, p.Tags)
	assert.NotNil(t, p.Technologies)
	assert.Equal(t, 0, p.Order)
	assert.False(t, p.Featured)
}

func TestProjectPrepare_KeepsExplicitStatus(t *testing.T) {
	p := Project{Title: "x", Description: "y", Status: ProjectStatusDraft}
	p.Prepare()
	assert.Equal(t, ProjectStatusDraft, p.Status)
}

func TestValidProjectStatus(t *testing.T) {
	for _, s := range []string{"Draft", "Published", "Completed", "Ongoing"} {
		assert.True(t, ValidProjectStatus(s), s)
	}
	assert.False(t, ValidProjectStatus("Archived"))
	assert.False(t, ValidProjectStatus("published")) // case-sensitive
	assert.False(t, ValidProjectStatus(""))
}

func TestSkillPrepare_Defaults(t *testing.T) {
	s := Skill{Name: "Go"}
	s.Prepare()

	assert.False(t, s.ID.IsZero())
	assert.Equal(t, SkillCategoryOther, s.Category)
	assert.False(t, s.CreatedAt.IsZero())
	assert.False(t, s.UpdatedAt.IsZero())
}

func TestValidSkillLevel(t *testing.T) {
	assert.False(t, ValidSkillLevel(0))
	assert.True(t, ValidSkillLevel(1))
	assert.True(t, ValidSkillLevel(100))
	assert.False(t, ValidSkillLevel(101))
	assert.False(t, ValidSkillLevel(-5))
}

func TestValidSkillCategory(t *testing.T) {
	for _, c := range []string{"Frontend", "Backend", "Tools", "Other"} {
		assert.True(t, ValidSkillCategory(c), c)
	}
	assert.False(t, ValidSkillCategory("DevOps"))
}

func TestTimelineItemPrepare_Defaults(t *testing.T) {
	item := TimelineItem{Period: "2023", Title: "BSc"}
	item.Prepare()

	assert.False(t, item.ID.IsZero())
	assert.Equal(t, TimelineTypeExperience, item.Type)
	assert.Equal(t, "briefcase", item.Icon)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestValidTimelineType(t *testing.T) {
	for _, tt := range []string{"education", "experience", "achievement", "goal", "other"} {
		assert.True(t, ValidTimelineType(tt), tt)
	}
	assert.False(t, ValidTimelineType("Education")) // lowercase enum
	assert.False(t, ValidTimelineType(""))
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	assert.False(t, p.ID.IsZero())
	assert.NotEqual(t, LegacyProfileName, p.Name)
	assert.NotEmpty(t, p.Title)
	assert.NotEmpty(t, p.SocialLinks.Github)
}
