package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/staffhq/staff-bot/internal/domain"
)

const embedColor = 0x5865F2

func staffEmbed(staff *domain.StaffFile) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Strikes", Value: fmt.Sprint(staff.Strikes), Inline: true},
		{Name: "Censures", Value: fmt.Sprint(staff.Censures), Inline: true},
		{Name: "PIPs", Value: fmt.Sprint(staff.PIPs), Inline: true},
	}
	if staff.Department != nil {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Department", Value: staff.Department.Name, Inline: true})
	}
	if staff.Team != nil {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Team", Value: staff.Team.Name, Inline: true})
	}
	if staff.Supervisor != nil {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Supervises", Value: staff.Supervisor.Title, Inline: true})
	}
	if len(staff.Positions) > 0 {
		titles := make([]string, 0, len(staff.Positions))
		for _, p := range staff.Positions {
			titles = append(titles, p.Title)
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Positions", Value: strings.Join(titles, ", ")})
	}
	if staff.ActivityStatus != nil {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Activity", Value: *staff.ActivityStatus, Inline: true})
	}

	embed := &discordgo.MessageEmbed{
		Title:  staff.Name,
		Color:  embedColor,
		Fields: fields,
	}
	if staff.Alumni {
		embed.Description = "Alumni"
	}
	if staff.PhotoLink != nil && *staff.PhotoLink != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: *staff.PhotoLink}
	}
	if staff.DiscordInformation != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: staff.DiscordInformation.Username}
	}
	return embed
}
