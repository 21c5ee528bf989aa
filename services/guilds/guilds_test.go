package guilds

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deltaboard/clients"
	"deltaboard/clients/discord"
)

func TestGuildsService_ListManagedGuilds(t *testing.T) {
	t.Run("returns only common guilds where caller is administrator", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		userGuilds := []*clients.DiscordGuild{
			{ID: "guild-1", Name: "Admin And Common", Icon: "abc", Permissions: 0x8},
			{ID: "guild-2", Name: "Admin But Bot Absent", Permissions: 0x8},
			{ID: "guild-3", Name: "Common But Not Admin", Permissions: 0x7},
			{ID: "guild-4", Name: "Also Admin And Common", Permissions: 0x8 | 0x20},
		}
		botGuilds := []*clients.DiscordGuild{
			{ID: "guild-1", Name: "Admin And Common"},
			{ID: "guild-3", Name: "Common But Not Admin"},
			{ID: "guild-4", Name: "Also Admin And Common"},
			{ID: "guild-5", Name: "Bot Only"},
		}

		mockClient.On("GetUserGuilds", mock.Anything, "Bearer user-token").Return(userGuilds, nil)
		mockClient.On("GetUserGuilds", mock.Anything, "Bot bot-token").Return(botGuilds, nil)

		managed, err := service.ListManagedGuilds(context.Background(), "user-token")

		require.NoError(t, err)
		require.Len(t, managed, 2)
		assert.Equal(t, "guild-1", managed[0].ID)
		assert.Equal(t, "guild-4", managed[1].ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("admin bit is checked regardless of other bits", func(t *testing.T) {
		testCases := []struct {
			permissions int64
			admitted    bool
		}{
			{0x8, true},
			{0x8 | 0x1 | 0x400, true},
			{^int64(0), true},
			{0x0, false},
			{0x7, false},
			{0x10, false},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("permissions=%#x", tc.permissions), func(t *testing.T) {
				mockClient := &discord.MockDiscordClient{}
				service := NewGuildsService(mockClient, "bot-token")

				userGuilds := []*clients.DiscordGuild{
					{ID: "guild-1", Name: "Guild", Permissions: tc.permissions},
				}
				botGuilds := []*clients.DiscordGuild{
					{ID: "guild-1", Name: "Guild"},
				}

				mockClient.On("GetUserGuilds", mock.Anything, "Bearer user-token").Return(userGuilds, nil)
				mockClient.On("GetUserGuilds", mock.Anything, "Bot bot-token").Return(botGuilds, nil)

				managed, err := service.ListManagedGuilds(context.Background(), "user-token")

				require.NoError(t, err)
				if tc.admitted {
					assert.Len(t, managed, 1)
				} else {
					assert.Empty(t, managed)
				}
			})
		}
	})

	t.Run("preserves the order of the caller's guild list", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		userGuilds := []*clients.DiscordGuild{
			{ID: "guild-c", Name: "C", Permissions: 0x8},
			{ID: "guild-a", Name: "A", Permissions: 0x8},
			{ID: "guild-b", Name: "B", Permissions: 0x8},
		}
		botGuilds := []*clients.DiscordGuild{
			{ID: "guild-a"},
			{ID: "guild-b"},
			{ID: "guild-c"},
		}

		mockClient.On("GetUserGuilds", mock.Anything, "Bearer user-token").Return(userGuilds, nil)
		mockClient.On("GetUserGuilds", mock.Anything, "Bot bot-token").Return(botGuilds, nil)

		managed, err := service.ListManagedGuilds(context.Background(), "user-token")

		require.NoError(t, err)
		require.Len(t, managed, 3)
		assert.Equal(t, "guild-c", managed[0].ID)
		assert.Equal(t, "guild-a", managed[1].ID)
		assert.Equal(t, "guild-b", managed[2].ID)
	})

	t.Run("builds icon URLs only for guilds with icons", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		userGuilds := []*clients.DiscordGuild{
			{ID: "guild-1", Name: "With Icon", Icon: "iconhash", Permissions: 0x8},
			{ID: "guild-2", Name: "Without Icon", Permissions: 0x8},
		}
		botGuilds := []*clients.DiscordGuild{
			{ID: "guild-1"},
			{ID: "guild-2"},
		}

		mockClient.On("GetUserGuilds", mock.Anything, "Bearer user-token").Return(userGuilds, nil)
		mockClient.On("GetUserGuilds", mock.Anything, "Bot bot-token").Return(botGuilds, nil)

		managed, err := service.ListManagedGuilds(context.Background(), "user-token")

		require.NoError(t, err)
		require.Len(t, managed, 2)
		require.NotNil(t, managed[0].IconURL)
		assert.Equal(t, "https://cdn.discordapp.com/icons/guild-1/iconhash.png", *managed[0].IconURL)
		assert.Nil(t, managed[1].IconURL)
	})

	t.Run("fails when caller guild fetch fails", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		mockClient.On("GetUserGuilds", mock.Anything, "Bearer user-token").
			Return(nil, fmt.Errorf("discord unavailable"))

		managed, err := service.ListManagedGuilds(context.Background(), "user-token")

		assert.Error(t, err)
		assert.Nil(t, managed)
		assert.Contains(t, err.Error(), "failed to fetch caller guilds")
	})

	t.Run("fails when bot guild fetch fails", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		mockClient.On("GetUserGuilds", mock.Anything, "Bearer user-token").
			Return([]*clients.DiscordGuild{}, nil)
		mockClient.On("GetUserGuilds", mock.Anything, "Bot bot-token").
			Return(nil, fmt.Errorf("discord unavailable"))

		managed, err := service.ListManagedGuilds(context.Background(), "user-token")

		assert.Error(t, err)
		assert.Nil(t, managed)
		assert.Contains(t, err.Error(), "failed to fetch bot guilds")
	})
}

func TestGuildsService_GetGuildInfo(t *testing.T) {
	t.Run("returns projected guild with icon URL", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		mockClient.On("GetGuildByID", mock.Anything, "guild-1").
			Return(&clients.DiscordGuild{ID: "guild-1", Name: "My Guild", Icon: "hash"}, nil)

		guild, err := service.GetGuildInfo(context.Background(), "guild-1")

		require.NoError(t, err)
		assert.Equal(t, "guild-1", guild.ID)
		assert.Equal(t, "My Guild", guild.Name)
		require.NotNil(t, guild.IconURL)
		assert.Equal(t, "https://cdn.discordapp.com/icons/guild-1/hash.png", *guild.IconURL)
	})

	t.Run("returns nil icon URL when guild has no icon", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		mockClient.On("GetGuildByID", mock.Anything, "guild-1").
			Return(&clients.DiscordGuild{ID: "guild-1", Name: "My Guild"}, nil)

		guild, err := service.GetGuildInfo(context.Background(), "guild-1")

		require.NoError(t, err)
		assert.Nil(t, guild.IconURL)
	})

	t.Run("fails when the provider call fails", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		mockClient.On("GetGuildByID", mock.Anything, "guild-1").
			Return(nil, fmt.Errorf("guild not found"))

		guild, err := service.GetGuildInfo(context.Background(), "guild-1")

		assert.Error(t, err)
		assert.Nil(t, guild)
	})
}

func TestGuildsService_IsGuildAdmin(t *testing.T) {
	t.Run("true when caller administers the guild", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		mockClient.On("GetUserGuilds", mock.Anything, "Bearer user-token").
			Return([]*clients.DiscordGuild{{ID: "guild-1", Permissions: 0x8}}, nil)

		isAdmin, err := service.IsGuildAdmin(context.Background(), "user-token", "guild-1")

		require.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("false when caller is a plain member", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		mockClient.On("GetUserGuilds", mock.Anything, "Bearer user-token").
			Return([]*clients.DiscordGuild{{ID: "guild-1", Permissions: 0x4}}, nil)

		isAdmin, err := service.IsGuildAdmin(context.Background(), "user-token", "guild-1")

		require.NoError(t, err)
		assert.False(t, isAdmin)
	})

	t.Run("false when caller is not a member at all", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		mockClient.On("GetUserGuilds", mock.Anything, "Bearer user-token").
			Return([]*clients.DiscordGuild{{ID: "other-guild", Permissions: 0x8}}, nil)

		isAdmin, err := service.IsGuildAdmin(context.Background(), "user-token", "guild-1")

		require.NoError(t, err)
		assert.False(t, isAdmin)
	})

	t.Run("fails when the guild list fetch fails", func(t *testing.T) {
		mockClient := &discord.MockDiscordClient{}
		service := NewGuildsService(mockClient, "bot-token")

		mockClient.On("GetUserGuilds", mock.Anything, "Bearer user-token").
			Return(nil, fmt.Errorf("discord unavailable"))

		isAdmin, err := service.IsGuildAdmin(context.Background(), "user-token", "guild-1")

		assert.Error(t, err)
		assert.False(t, isAdmin)
	})
}
