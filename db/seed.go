// Package db provides the development and test fixture data. The fixture is
// shaped so the interesting cases exist: an article with a known vote count
// and eleven comments, an article with none, and a topic with no articles.
package db

import (
	"fmt"
	"time"

	"nc-news-api/models"

	"gorm.io/gorm"
)

const defaultArticleImg = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

func date(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// Seed inserts the fixture data into an empty database. A database that
// already holds topics is left untouched, so it is safe to call on every
// startup.
func Seed(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&models.Topic{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if count > 0 {
		return nil
	}

	topics := []models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "paper", Description: "what books are made of"},
	}

	users := []models.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
	}

	articles := []models.Article{
		{
			ArticleID: 1, Title: "Living in the shadow of a great man",
			Topic: "mitch", Author: "butter_bridge",
			Body:      "I find this existence challenging",
			CreatedAt: date("2020-07-09T20:11:00Z"), Votes: 100,
			ArticleImgURL: defaultArticleImg,
		},
		{
			ArticleID: 2, Title: "Sony Vaio; or, The Laptop",
			Topic: "mitch", Author: "icellusedkars",
			Body:      "Call me Mitchell. Some years ago, never mind how long precisely, I bought a laptop.",
			CreatedAt: date("2020-10-16T05:03:00Z"),
			ArticleImgURL: defaultArticleImg,
		},
		{
			ArticleID: 3, Title: "Eight pug gifs that remind me of mitch",
			Topic: "mitch", Author: "icellusedkars",
			Body:      "some gifs",
			CreatedAt: date("2020-11-03T09:12:00Z"),
			ArticleImgURL: defaultArticleImg,
		},
		{
			ArticleID: 4, Title: "Student SUES Mitch!",
			Topic: "mitch", Author: "rogersop",
			Body:      "We all love Mitch and his wonderful, unique typing style. However, the volume of his typing has ALLEGEDLY burst another students eardrums.",
			CreatedAt: date("2020-05-06T01:14:00Z"),
			ArticleImgURL: defaultArticleImg,
		},
		{
			ArticleID: 5, Title: "UNCOVERED: catspiracy to bring down democracy",
			Topic: "cats", Author: "rogersop",
			Body:      "Bastet walks amongst us, and the cats are taking arms!",
			CreatedAt: date("2020-08-03T13:14:00Z"),
			ArticleImgURL: defaultArticleImg,
		},
	}

	// Eleven comments on article 1, none on article 2.
	comments := []models.Comment{
		{CommentID: 1, ArticleID: 1, Author: "icellusedkars", Body: "Oh, I've got compassion running out of my nose, pal!", Votes: 16, CreatedAt: date("2020-04-06T12:17:00Z")},
		{CommentID: 2, ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists.", Votes: 14, CreatedAt: date("2020-04-14T20:19:00Z")},
		{CommentID: 3, ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.", Votes: 100, CreatedAt: date("2020-03-01T01:13:00Z")},
		{CommentID: 4, ArticleID: 1, Author: "icellusedkars", Body: "I carry a log — yes. Is it funny to you? It is not to me.", Votes: -100, CreatedAt: date("2020-02-23T12:01:00Z")},
		{CommentID: 5, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", Votes: 0, CreatedAt: date("2020-11-03T21:00:00Z")},
		{CommentID: 6, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming eyes even more", Votes: 0, CreatedAt: date("2020-04-11T21:02:00Z")},
		{CommentID: 7, ArticleID: 1, Author: "icellusedkars", Body: "Lobster pot", Votes: 0, CreatedAt: date("2020-05-15T20:19:00Z")},
		{CommentID: 8, ArticleID: 1, Author: "icellusedkars", Body: "Delicious crackerbreads", Votes: 0, CreatedAt: date("2020-04-03T00:17:00Z")},
		{CommentID: 9, ArticleID: 1, Author: "icellusedkars", Body: "Superficially charming", Votes: 0, CreatedAt: date("2020-01-01T03:08:00Z")},
		{CommentID: 10, ArticleID: 1, Author: "rogersop", Body: "git push origin master", Votes: 0, CreatedAt: date("2020-06-20T07:24:00Z")},
		{CommentID: 11, ArticleID: 1, Author: "rogersop", Body: "Ambidextrous marsupial", Votes: 0, CreatedAt: date("2020-09-19T23:10:00Z")},
		{CommentID: 12, ArticleID: 3, Author: "butter_bridge", Body: "This morning, I showered for nine minutes.", Votes: 16, CreatedAt: date("2020-07-21T00:20:00Z")},
		{CommentID: 13, ArticleID: 5, Author: "butter_bridge", Body: "Fruit pastilles", Votes: 0, CreatedAt: date("2020-06-15T10:25:00Z")},
	}

	if err := gdb.Create(&topics).Error; err != nil {
		return fmt.Errorf("seed topics: %w", err)
	}
	if err := gdb.Create(&users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := gdb.Create(&articles).Error; err != nil {
		return fmt.Errorf("seed articles: %w", err)
	}
	if err := gdb.Create(&comments).Error; err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}

	// The fixture inserts explicit primary keys, which leaves postgres
	// sequences behind the data; advance them so the next insert does not
	// collide. sqlite bumps its own sequence on explicit inserts.
	if gdb.Dialector.Name() == "postgres" {
		for _, stmt := range []string{
			"SELECT setval(pg_get_serial_sequence('articles', 'article_id'), (SELECT MAX(article_id) FROM articles))",
			"SELECT setval(pg_get_serial_sequence('comments', 'comment_id'), (SELECT MAX(comment_id) FROM comments))",
		} {
			if err := gdb.Exec(stmt).Error; err != nil {
				return fmt.Errorf("seed sequences: %w", err)
			}
		}
	}
	return nil
}
