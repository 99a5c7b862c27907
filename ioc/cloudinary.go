// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gotomicro/ego/core/econf"
)

func InitCloudinary() *cloudinary.Cloudinary {
	type Config struct {
		// URL 形如 cloudinary://<api_key>:<api_secret>@<cloud_name>
		URL string `yaml:"url"`
	}
	var cfg Config
	err := econf.UnmarshalKey("cloudinary", &cfg)
	if err != nil {
		panic(err)
	}
	cld, err := cloudinary.NewFromURL(cfg.URL)
	if err != nil {
		panic(err)
	}
	cld.Config.URL.Secure = true
	return cld
}
