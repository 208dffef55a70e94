package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	PostKeyPrefix        = "post:%d"
	FeedKeyPrefix        = "feed:%s:%d"
	CategoriesKey        = "categories"
	ReadingListKeyPrefix = "readinglist:%d"
)

const (
	UserTTL        = 5 * time.Minute
	PostTTL        = 30 * time.Minute
	FeedTTL        = 1 * time.Minute
	CategoriesTTL  = 1 * time.Hour
	ReadingListTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

// FeedKey keys a feed page by category filter and page number. An empty
// category means the unfiltered feed.
func FeedKey(category string, page int) string {
	if category == "" {
		category = "_all"
	}
	return fmt.Sprintf(FeedKeyPrefix, category, page)
}

func ReadingListKey(listID uint) string {
	return fmt.Sprintf(ReadingListKeyPrefix, listID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateReadingList(ctx context.Context, listID uint) {
	Invalidate(ctx, ReadingListKey(listID))
}

// InvalidateFeed drops all cached feed pages. Called after post writes so the
// next feed read goes to the database.
func InvalidateFeed(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "feed:*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
